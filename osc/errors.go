package osc

import "errors"

// Decode errors. Every failed decode wraps exactly one of these, so callers
// can discriminate with errors.Is. Decoding is all-or-nothing: once an error
// is returned the whole packet is discarded, there is no partial result.
var (
	// ErrMalformedPacket is returned for an empty input buffer, or for a
	// buffer that is structurally broken in a way no more specific error
	// covers (truncated fixed-width argument, unterminated array).
	ErrMalformedPacket = errors.New("malformed packet")

	// ErrMissingTypeTagComma is returned when no ',' is found while scanning
	// for the start of the type tag string.
	ErrMissingTypeTagComma = errors.New("missing type tag comma")

	// ErrMisalignedAddress is returned when the address section does not end
	// on a 4-byte boundary before the type tag string begins.
	ErrMisalignedAddress = errors.New("misaligned address")

	// ErrMissingNullTerminator is returned when the type tag string or a
	// string/symbol argument runs past the end of the buffer without a null.
	ErrMissingNullTerminator = errors.New("missing null terminator")

	// ErrUnknownTypeTag is returned for a type tag character outside the
	// supported set.
	ErrUnknownTypeTag = errors.New("unknown type tag")

	// ErrNestedArrays is returned when a '[' is encountered inside an array.
	// Arrays nest to depth 1 only, on the wire and in values.
	ErrNestedArrays = errors.New("nested arrays unsupported")

	// ErrNotABundle is returned when a buffer starts with '#' but the 8-byte
	// header is not exactly "#bundle\x00".
	ErrNotABundle = errors.New("not a bundle")

	// ErrTruncatedBundle is returned when a bundle element's declared length
	// exceeds the remaining buffer.
	ErrTruncatedBundle = errors.New("truncated bundle")

	// ErrInvalidAddress is returned when an address is empty or does not
	// start with '/'.
	ErrInvalidAddress = errors.New("invalid address")
)
