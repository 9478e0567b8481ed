package osc

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	bit32Size = 4
	bit64Size = 8
)

////
// De/Encoding functions
////

// parsePaddedString reads a null-terminated string from the given slice and
// returns the string and the number of bytes consumed. The terminator is
// located by scanning forward; consumption then re-aligns to the 4-byte
// boundary past the string's characters, mirroring writePaddedString: a
// string whose length is already a multiple of 4 consumes no padding at all,
// so the null that stopped the scan may belong to the following field.
func parsePaddedString(data []byte) (string, int, error) {
	pos := bytes.IndexByte(data, 0)
	if pos == -1 {
		return "", 0, fmt.Errorf("parsePaddedString: %w", ErrMissingNullTerminator)
	}

	return string(data[:pos]), pos + padBytesNeeded(pos), nil
}

// writePaddedString writes str followed by null padding up to the next
// 4-byte boundary and returns the number of bytes written. When len(str) is
// already a multiple of 4 no padding bytes are emitted; parsePaddedString
// applies the same rule, so round trips hold.
func writePaddedString(str string, b *bytes.Buffer) int {
	b.WriteString(str)

	n := padBytesNeeded(len(str))
	for i := 0; i < n; i++ {
		b.WriteByte(0)
	}

	return len(str) + n
}

// parseBlob reads a length-prefixed blob and returns a copy of the payload
// and the number of bytes consumed (prefix plus payload, before padding; the
// caller re-aligns the cursor).
func parseBlob(data []byte) ([]byte, int, error) {
	if len(data) < bit32Size {
		return nil, 0, fmt.Errorf("parseBlob: short buffer: %w", ErrMalformedPacket)
	}
	blobLen := int(int32(binary.BigEndian.Uint32(data[:bit32Size])))
	if blobLen < 0 || blobLen > len(data)-bit32Size {
		return nil, 0, fmt.Errorf("parseBlob: invalid blob length %d: %w", blobLen, ErrMalformedPacket)
	}

	blob := make([]byte, blobLen)
	copy(blob, data[bit32Size:])

	return blob, bit32Size + blobLen, nil
}

// writeBlob writes data as an OSC blob: a 4-byte length prefix, the payload,
// and null padding so the total is a multiple of 4. Returns the number of
// bytes written.
func writeBlob(data []byte, b *bytes.Buffer) int {
	var size [bit32Size]byte
	binary.BigEndian.PutUint32(size[:], uint32(len(data)))
	b.Write(size[:])
	b.Write(data)

	n := padBytesNeeded(len(data))
	for i := 0; i < n; i++ {
		b.WriteByte(0)
	}

	return bit32Size + len(data) + n
}

// padBytesNeeded determines how many bytes are needed to fill up to the next
// 4 byte length.
func padBytesNeeded(elementLen int) int {
	return (4 - (elementLen % 4)) % 4
}
