package osc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"
)

const bundleTagString = "#bundle"

// bundleHeader is the exact 8-byte header every bundle starts with.
var bundleHeader = []byte("#bundle\x00")

// Bundle represents an OSC bundle. It consists of the OSC-string "#bundle"
// followed by an OSC Time Tag, followed by zero or more size-framed
// messages. Nested bundles fall outside the supported subset; elements are
// always messages. See http://opensoundcontrol.org/spec-1_0.html for more
// information.
type Bundle struct {
	Timetag  Timetag
	Elements []*Message
}

// Verify that Bundle implements the Packet interface.
var _ Packet = (*Bundle)(nil)

// NewBundle returns an empty OSC Bundle stamped with the current time.
func NewBundle() *Bundle {
	return &Bundle{Timetag: NewTimetag()}
}

// NewBundleWithTime returns an empty OSC Bundle stamped with the given time.
func NewBundleWithTime(time time.Time) *Bundle {
	return &Bundle{Timetag: NewTimetagFromTime(time)}
}

// Append appends a message to the bundle.
func (b *Bundle) Append(msg *Message) {
	b.Elements = append(b.Elements, msg)
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The
// output has the following format:
// 1. Bundle string: '#bundle'
// 2. OSC timetag
// 3. Length of first bundle element
// 4. First bundle element
// 5. Length of n bundle element
// 6. n bundle element
func (b *Bundle) MarshalBinary() ([]byte, error) {
	buf := bufPool.Get().(*bytes.Buffer)
	defer bufPool.Put(buf)
	buf.Reset()

	if err := b.LightMarshalBinary(buf); err != nil {
		return nil, err
	}

	bb := make([]byte, buf.Len())
	copy(bb, buf.Bytes())
	return bb, nil
}

// LightMarshalBinary writes the encoded bundle into data.
func (b *Bundle) LightMarshalBinary(data *bytes.Buffer) error {
	writePaddedString(bundleTagString, data)

	// Add the time tag
	writeBE64(uint64(b.Timetag), data)

	// Process all bundle elements
	for _, m := range b.Elements {
		buf, err := m.MarshalBinary()
		if err != nil {
			return err
		}

		// Write the size of the element
		writeBE32(uint32(len(buf)), data)

		// Append the element, padded to the next 4-byte boundary
		data.Write(buf)
		for i := 0; i < padBytesNeeded(len(buf)); i++ {
			data.WriteByte(0)
		}
	}

	return nil
}

// NewBundleFromData returns a new OSC bundle created from the parsed data.
func NewBundleFromData(data []byte) (*Bundle, error) {
	b := &Bundle{}
	if err := b.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return b, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (b *Bundle) UnmarshalBinary(data []byte) error {
	// Read the '#bundle' OSC string
	if len(data) < len(bundleHeader) || !bytes.Equal(data[:len(bundleHeader)], bundleHeader) {
		return fmt.Errorf("UnmarshalBinary: %w", ErrNotABundle)
	}
	data = data[len(bundleHeader):]

	// Read the timetag
	if len(data) < bit64Size {
		return fmt.Errorf("UnmarshalBinary: %w", ErrTruncatedBundle)
	}
	b.Timetag = Timetag(binary.BigEndian.Uint64(data[:bit64Size]))
	data = data[bit64Size:]

	// Read until the end of the buffer
	for len(data) > 0 {
		if len(data) < bit32Size {
			return fmt.Errorf("UnmarshalBinary: %w", ErrTruncatedBundle)
		}
		length := int(int32(binary.BigEndian.Uint32(data[:bit32Size])))
		data = data[bit32Size:]
		if length < 0 || length > len(data) {
			return fmt.Errorf("UnmarshalBinary: element length %d exceeds %d remaining: %w",
				length, len(data), ErrTruncatedBundle)
		}

		m := &Message{}
		if err := m.UnmarshalBinary(data[:length]); err != nil {
			return err
		}
		b.Elements = append(b.Elements, m)

		// Advance past the element, then to the next 4-byte boundary; the
		// size prefix itself does not require the element to be a multiple
		// of 4.
		length += padBytesNeeded(length)
		if length > len(data) {
			length = len(data)
		}
		data = data[length:]
	}

	return nil
}
