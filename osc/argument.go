package osc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Argument is a single typed OSC message argument. The types below enumerate
// the OSC 1.0 tag set; nothing else satisfies the interface, so a type
// switch over Argument is exhaustive.
type Argument interface {
	// Tag returns the type tag character the argument encodes under.
	Tag() TypeTag

	appendTag(tags []byte) []byte
	writePayload(b *bytes.Buffer)
}

// Int32 is an 'i' argument, a 32-bit signed integer.
type Int32 int32

// Float32 is an 'f' argument, a 32-bit float.
type Float32 float32

// String is an 's' argument, a null-padded UTF-8 string.
type String string

// Blob is a 'b' argument, a length-prefixed opaque byte payload.
type Blob []byte

// Int64 is an 'h' argument, a 64-bit signed integer.
type Int64 int64

// Float64 is a 'd' argument, a 64-bit float.
type Float64 float64

// Symbol is an 'S' argument. It shares the wire encoding of String but is
// semantically distinct.
type Symbol string

// Char is a 'c' argument, a single character carried in the low byte of a
// 4-byte slot.
type Char rune

// Color is an 'r' argument, four raw bytes r,g,b,a.
type Color struct {
	R, G, B, A uint8
}

// MIDI is an 'm' argument, four raw bytes: port id, status, data1, data2.
type MIDI struct {
	Port, Status, Data1, Data2 uint8
}

// Bool is a 'T' or 'F' argument. It occupies no payload bytes; the value
// lives entirely in the type tag.
type Bool bool

// Nil is an 'N' argument. It occupies no payload bytes.
type Nil struct{}

// Infinitum is an 'I' argument, the value "positive infinity". It occupies
// no payload bytes.
type Infinitum struct{}

// Array is a '['...']' argument, an ordered run of scalar arguments. Arrays
// nest to depth 1 only: an Array may not contain another Array.
type Array []Argument

func (Int32) Tag() TypeTag     { return TypeInt32 }
func (Float32) Tag() TypeTag   { return TypeFloat32 }
func (String) Tag() TypeTag    { return TypeString }
func (Blob) Tag() TypeTag      { return TypeBlob }
func (Int64) Tag() TypeTag     { return TypeInt64 }
func (Float64) Tag() TypeTag   { return TypeFloat64 }
func (Symbol) Tag() TypeTag    { return TypeSymbol }
func (Char) Tag() TypeTag      { return TypeChar }
func (Color) Tag() TypeTag     { return TypeColor }
func (MIDI) Tag() TypeTag      { return TypeMIDI }
func (Nil) Tag() TypeTag       { return TypeNil }
func (Infinitum) Tag() TypeTag { return TypeInfinitum }
func (Array) Tag() TypeTag     { return TypeArrayStart }

// Tag returns TypeTrue or TypeFalse depending on the value.
func (a Bool) Tag() TypeTag {
	if a {
		return TypeTrue
	}
	return TypeFalse
}

func (a Int32) appendTag(tags []byte) []byte     { return append(tags, byte(TypeInt32)) }
func (a Float32) appendTag(tags []byte) []byte   { return append(tags, byte(TypeFloat32)) }
func (a String) appendTag(tags []byte) []byte    { return append(tags, byte(TypeString)) }
func (a Blob) appendTag(tags []byte) []byte      { return append(tags, byte(TypeBlob)) }
func (a Int64) appendTag(tags []byte) []byte     { return append(tags, byte(TypeInt64)) }
func (a Float64) appendTag(tags []byte) []byte   { return append(tags, byte(TypeFloat64)) }
func (a Symbol) appendTag(tags []byte) []byte    { return append(tags, byte(TypeSymbol)) }
func (a Char) appendTag(tags []byte) []byte      { return append(tags, byte(TypeChar)) }
func (a Color) appendTag(tags []byte) []byte     { return append(tags, byte(TypeColor)) }
func (a MIDI) appendTag(tags []byte) []byte      { return append(tags, byte(TypeMIDI)) }
func (a Bool) appendTag(tags []byte) []byte      { return append(tags, byte(a.Tag())) }
func (a Nil) appendTag(tags []byte) []byte       { return append(tags, byte(TypeNil)) }
func (a Infinitum) appendTag(tags []byte) []byte { return append(tags, byte(TypeInfinitum)) }

func (a Array) appendTag(tags []byte) []byte {
	tags = append(tags, byte(TypeArrayStart))
	for _, elem := range a {
		tags = elem.appendTag(tags)
	}
	return append(tags, byte(TypeArrayEnd))
}

func (a Int32) writePayload(b *bytes.Buffer)   { writeBE32(uint32(a), b) }
func (a Float32) writePayload(b *bytes.Buffer) { writeBE32(math.Float32bits(float32(a)), b) }
func (a String) writePayload(b *bytes.Buffer)  { writePaddedString(string(a), b) }
func (a Blob) writePayload(b *bytes.Buffer)    { writeBlob(a, b) }
func (a Int64) writePayload(b *bytes.Buffer)   { writeBE64(uint64(a), b) }
func (a Float64) writePayload(b *bytes.Buffer) { writeBE64(math.Float64bits(float64(a)), b) }
func (a Symbol) writePayload(b *bytes.Buffer)  { writePaddedString(string(a), b) }
func (a Char) writePayload(b *bytes.Buffer)    { writeBE32(uint32(a), b) }
func (a Color) writePayload(b *bytes.Buffer)   { b.Write([]byte{a.R, a.G, a.B, a.A}) }
func (a MIDI) writePayload(b *bytes.Buffer)    { b.Write([]byte{a.Port, a.Status, a.Data1, a.Data2}) }
func (a Bool) writePayload(b *bytes.Buffer)    {}
func (a Nil) writePayload(b *bytes.Buffer)     {}

func (a Infinitum) writePayload(b *bytes.Buffer) {}

func (a Array) writePayload(b *bytes.Buffer) {
	for _, elem := range a {
		elem.writePayload(b)
	}
}

func writeBE32(v uint32, b *bytes.Buffer) {
	var buf [bit32Size]byte
	binary.BigEndian.PutUint32(buf[:], v)
	b.Write(buf[:])
}

func writeBE64(v uint64, b *bytes.Buffer) {
	var buf [bit64Size]byte
	binary.BigEndian.PutUint64(buf[:], v)
	b.Write(buf[:])
}

// readArgument decodes the argument for tag from the start of data and
// returns it together with the number of bytes consumed, before the caller's
// re-alignment to the next 4-byte boundary. The bracket tags never reach
// here; the message decoder handles them.
func readArgument(tag TypeTag, data []byte) (Argument, int, error) {
	switch tag {
	default:
		return nil, 0, fmt.Errorf("readArgument: %q: %w", tag, ErrUnknownTypeTag)

	case TypeInt32:
		if len(data) < bit32Size {
			return nil, 0, shortArgument(tag)
		}
		return Int32(binary.BigEndian.Uint32(data)), bit32Size, nil

	case TypeFloat32:
		if len(data) < bit32Size {
			return nil, 0, shortArgument(tag)
		}
		return Float32(math.Float32frombits(binary.BigEndian.Uint32(data))), bit32Size, nil

	case TypeString:
		str, n, err := parsePaddedString(data)
		if err != nil {
			return nil, 0, err
		}
		return String(str), n, nil

	case TypeBlob:
		blob, n, err := parseBlob(data)
		if err != nil {
			return nil, 0, err
		}
		return Blob(blob), n, nil

	case TypeInt64:
		if len(data) < bit64Size {
			return nil, 0, shortArgument(tag)
		}
		return Int64(binary.BigEndian.Uint64(data)), bit64Size, nil

	case TypeTimetag:
		if len(data) < bit64Size {
			return nil, 0, shortArgument(tag)
		}
		return Timetag(binary.BigEndian.Uint64(data)), bit64Size, nil

	case TypeFloat64:
		if len(data) < bit64Size {
			return nil, 0, shortArgument(tag)
		}
		return Float64(math.Float64frombits(binary.BigEndian.Uint64(data))), bit64Size, nil

	case TypeSymbol:
		str, n, err := parsePaddedString(data)
		if err != nil {
			return nil, 0, err
		}
		return Symbol(str), n, nil

	case TypeChar:
		if len(data) < bit32Size {
			return nil, 0, shortArgument(tag)
		}
		return Char(binary.BigEndian.Uint32(data)), bit32Size, nil

	case TypeColor:
		if len(data) < bit32Size {
			return nil, 0, shortArgument(tag)
		}
		return Color{R: data[0], G: data[1], B: data[2], A: data[3]}, bit32Size, nil

	case TypeMIDI:
		if len(data) < bit32Size {
			return nil, 0, shortArgument(tag)
		}
		return MIDI{Port: data[0], Status: data[1], Data1: data[2], Data2: data[3]}, bit32Size, nil

	case TypeTrue:
		return Bool(true), 0, nil

	case TypeFalse:
		return Bool(false), 0, nil

	case TypeNil:
		return Nil{}, 0, nil

	case TypeInfinitum:
		return Infinitum{}, 0, nil
	}
}

func shortArgument(tag TypeTag) error {
	return fmt.Errorf("readArgument: %q: short buffer: %w", tag, ErrMalformedPacket)
}
