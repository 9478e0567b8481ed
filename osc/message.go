package osc

import (
	"bytes"
	"fmt"
)

// Message represents a single OSC message. An OSC message consists of an OSC
// address pattern and zero or more typed arguments.
type Message struct {
	Address   string
	Arguments []Argument
}

// Verify that Message implements the Packet interface.
var _ Packet = (*Message)(nil)

// NewMessage returns a new Message. The address parameter is the OSC address.
func NewMessage(addr string, args ...Argument) *Message {
	return &Message{Address: addr, Arguments: args}
}

// Append appends the given arguments to the arguments list.
func (m *Message) Append(args ...Argument) {
	m.Arguments = append(m.Arguments, args...)
}

// CountArguments returns the number of arguments.
func (m *Message) CountArguments() int {
	return len(m.Arguments)
}

// TypeTags returns the type tag string for the message's arguments,
// including the leading comma.
func (m *Message) TypeTags() (string, error) {
	if m == nil {
		return "", fmt.Errorf("TypeTags: message is nil")
	}
	if err := m.validateArguments(); err != nil {
		return "", fmt.Errorf("TypeTags: %w", err)
	}

	tags := make([]byte, 0, len(m.Arguments)+1)
	tags = append(tags, ',')
	for _, arg := range m.Arguments {
		tags = arg.appendTag(tags)
	}

	return string(tags), nil
}

// String implements the fmt.Stringer interface.
func (m *Message) String() string {
	if m == nil {
		return ""
	}

	tags, _ := m.TypeTags()

	strBuf := bufPool.Get().(*bytes.Buffer)
	defer bufPool.Put(strBuf)
	strBuf.Reset()

	strBuf.WriteString(m.Address)
	if len(tags) <= 1 {
		return strBuf.String()
	}

	strBuf.WriteByte(' ')
	strBuf.WriteString(tags)

	for _, arg := range m.Arguments {
		writeArgumentString(strBuf, arg)
	}

	return strBuf.String()
}

func writeArgumentString(b *bytes.Buffer, arg Argument) {
	switch a := arg.(type) {
	case Bool, Int32, Int64, Float32, Float64, String, Symbol:
		fmt.Fprintf(b, " %v", a)

	case Char:
		fmt.Fprintf(b, " %q", rune(a))

	case Nil:
		b.WriteString(" Nil")

	case Infinitum:
		b.WriteString(" Inf")

	case Blob:
		b.WriteString(" blob")

	case Timetag:
		fmt.Fprintf(b, " %d", uint64(a))

	case Color:
		fmt.Fprintf(b, " #%02x%02x%02x%02x", a.R, a.G, a.B, a.A)

	case MIDI:
		fmt.Fprintf(b, " midi(%d,%d,%d,%d)", a.Port, a.Status, a.Data1, a.Data2)

	case Array:
		b.WriteString(" [")
		for _, elem := range a {
			writeArgumentString(b, elem)
		}
		b.WriteString(" ]")
	}
}

// validateArguments rejects values that have no wire encoding: an Array
// nested inside another Array.
func (m *Message) validateArguments() error {
	for _, arg := range m.Arguments {
		arr, ok := arg.(Array)
		if !ok {
			continue
		}
		for _, elem := range arr {
			if _, ok := elem.(Array); ok {
				return fmt.Errorf("array inside array: %w", ErrNestedArrays)
			}
		}
	}
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (m *Message) MarshalBinary() (b []byte, err error) {
	data := bufPool.Get().(*bytes.Buffer)
	defer bufPool.Put(data)
	data.Reset()

	if err = m.LightMarshalBinary(data); err != nil {
		return nil, err
	}
	return append(b, data.Bytes()...), nil
}

// LightMarshalBinary writes the encoded message into data. The message is
// validated before any bytes are written, so a failed call leaves data
// untouched.
func (m *Message) LightMarshalBinary(data *bytes.Buffer) error {
	if m.Address == "" || m.Address[0] != '/' {
		return fmt.Errorf("LightMarshalBinary: address %q: %w", m.Address, ErrInvalidAddress)
	}
	if err := m.validateArguments(); err != nil {
		return fmt.Errorf("LightMarshalBinary: %w", err)
	}

	b := bufPool.Get().(*bytes.Buffer)
	defer bufPool.Put(b)
	b.Reset()

	// Process the type tags and collect all arguments
	tags := make([]byte, 0, len(m.Arguments)+1)
	tags = append(tags, ',')
	for _, arg := range m.Arguments {
		tags = arg.appendTag(tags)
		arg.writePayload(b)
	}

	if b.Len() >= MaxPacketSize {
		return fmt.Errorf("LightMarshalBinary: payload too large: %d", b.Len())
	}

	writePaddedString(m.Address, data)

	// Write the type tag string to the data buffer
	writePaddedString(string(tags), data)

	// Write the payload (OSC arguments) to the data buffer
	data.Write(b.Bytes())

	if data.Len() >= MaxPacketSize {
		return fmt.Errorf("LightMarshalBinary: packet too large: %d", data.Len())
	}

	return nil
}

// NewMessageFromData returns a new Message created from the parsed data.
func NewMessageFromData(data []byte) (*Message, error) {
	msg := &Message{}
	if err := msg.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return msg, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface. The
// address section is located by scanning for the first ',', which must sit
// on a 4-byte boundary; the producer pads the address before the type tag
// string begins.
func (m *Message) UnmarshalBinary(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("UnmarshalBinary: %w", ErrMalformedPacket)
	}

	comma := bytes.IndexByte(data, ',')
	if comma == -1 {
		return fmt.Errorf("UnmarshalBinary: %w", ErrMissingTypeTagComma)
	}
	if comma%bit32Size != 0 {
		return fmt.Errorf("UnmarshalBinary: address section is %d bytes: %w", comma, ErrMisalignedAddress)
	}

	addr := string(bytes.TrimRight(data[:comma], "\x00"))
	if addr == "" || addr[0] != '/' {
		return fmt.Errorf("UnmarshalBinary: address %q: %w", addr, ErrInvalidAddress)
	}

	m.Address = addr
	if err := m.readArguments(data[comma:]); err != nil {
		return fmt.Errorf("UnmarshalBinary: %w", err)
	}

	return nil
}

// readArguments decodes the type tag string and the arguments it declares.
// data starts at the comma.
func (m *Message) readArguments(data []byte) error {
	typetags, cursor, err := parsePaddedString(data)
	if err != nil {
		return fmt.Errorf("readArguments: %w", err)
	}

	if len(typetags) <= 1 {
		return nil
	}

	args := make([]Argument, 0, len(typetags)-1)
	var arr Array
	inArray := false

	for _, c := range typetags[1:] {
		switch TypeTag(c) {
		case TypeArrayStart:
			if inArray {
				return fmt.Errorf("readArguments: %w", ErrNestedArrays)
			}
			inArray = true
			arr = Array{}
			continue

		case TypeArrayEnd:
			if !inArray {
				return fmt.Errorf("readArguments: ']' outside array: %w", ErrMalformedPacket)
			}
			args = append(args, arr)
			arr = nil
			inArray = false
			continue
		}

		if cursor > len(data) {
			return fmt.Errorf("readArguments: %q: short buffer: %w", c, ErrMalformedPacket)
		}

		arg, n, err := readArgument(TypeTag(c), data[cursor:])
		if err != nil {
			return fmt.Errorf("readArguments: %w", err)
		}

		// Advance past the argument, then to the next 4-byte boundary.
		cursor += n
		cursor += padBytesNeeded(cursor)

		if inArray {
			arr = append(arr, arg)
		} else {
			args = append(args, arg)
		}
	}

	if inArray {
		return fmt.Errorf("readArguments: unterminated array: %w", ErrMalformedPacket)
	}

	m.Arguments = args
	return nil
}
