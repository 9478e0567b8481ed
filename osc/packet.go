package osc

import (
	"encoding"
	"fmt"
)

// Packet is the interface for Message and Bundle.
type Packet interface {
	encoding.BinaryMarshaler
}

// ParsePacket decodes a raw buffer into a *Message or a *Bundle. A buffer
// whose first byte is '#' is decoded as a bundle, anything else as a
// message. This is the single decode entry point.
func ParsePacket(data []byte) (Packet, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("ParsePacket: empty buffer: %w", ErrMalformedPacket)
	}

	if data[0] == '#' {
		return NewBundleFromData(data)
	}
	return NewMessageFromData(data)
}
