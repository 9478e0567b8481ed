package osc

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaddedString(t *testing.T) {
	for _, tt := range []struct {
		buf  []byte // buffer
		n    int    // bytes consumed
		want string // resulting string
		err  error
	}{
		{[]byte{'t', 'e', 's', 't', 's', 't', 'r', 'i', 'n', 'g', 0, 0}, 12, "teststring", nil},
		{[]byte{'t', 'e', 's', 't', 'e', 'r', 's', 0}, 8, "testers", nil},
		{[]byte{'t', 'e', 's', 't', 's', 0, 0, 0}, 8, "tests", nil},
		{[]byte{'t', 'e', 's', 0, 0, 0, 0, 0}, 4, "tes", nil},
		// A length that is already a multiple of 4 consumes no padding; the
		// null that stopped the scan belongs to the following field.
		{[]byte{'t', 'e', 's', 't', 0, 0, 0, 0}, 4, "test", nil},
		{[]byte{'t', 'e', 's', 't'}, 0, "", ErrMissingNullTerminator},
	} {
		got, n, err := parsePaddedString(tt.buf)
		if tt.err != nil {
			assert.Truef(t, errors.Is(err, tt.err), "%q: got err %v, want %v", tt.buf, err, tt.err)
			continue
		}
		require.NoErrorf(t, err, "%q: error reading padded string", tt.buf)
		assert.Equalf(t, tt.n, n, "%q: consumed bytes", tt.buf)
		assert.Equalf(t, tt.want, got, "%q: string", tt.buf)
	}
}

func TestWritePaddedString(t *testing.T) {
	for _, tt := range []struct {
		str  string
		want []byte
	}{
		{"testString", []byte("testString\x00\x00")},
		{"#bundle", []byte("#bundle\x00")},
		// No padding at all when the length is already a multiple of 4.
		{"abcd", []byte("abcd")},
	} {
		buf := new(bytes.Buffer)
		n := writePaddedString(tt.str, buf)
		assert.Equalf(t, len(tt.want), n, "%q: written byte count", tt.str)
		assert.Equalf(t, tt.want, buf.Bytes(), "%q: written bytes", tt.str)
	}
}

func TestWriteBlob(t *testing.T) {
	for _, tt := range []struct {
		blob []byte
		want []byte
	}{
		{[]byte{1, 2, 3}, []byte{0, 0, 0, 3, 1, 2, 3, 0}},
		{[]byte{1, 2, 3, 4}, []byte{0, 0, 0, 4, 1, 2, 3, 4}},
		{nil, []byte{0, 0, 0, 0}},
	} {
		buf := new(bytes.Buffer)
		n := writeBlob(tt.blob, buf)
		assert.Equal(t, len(tt.want), n)
		assert.Equal(t, tt.want, buf.Bytes())
	}
}

func TestParseBlob(t *testing.T) {
	blob, n, err := parseBlob([]byte{0, 0, 0, 3, 1, 2, 3, 0})
	require.NoError(t, err)
	// The consumed count excludes padding; the caller re-aligns the cursor.
	assert.Equal(t, 7, n)
	assert.Equal(t, []byte{1, 2, 3}, blob)

	_, _, err = parseBlob([]byte{0, 0})
	assert.True(t, errors.Is(err, ErrMalformedPacket))
}

func TestPadBytesNeeded(t *testing.T) {
	var n int
	n = padBytesNeeded(4)
	if n != 0 {
		t.Errorf("Number of pad bytes should be 0 and is: %d", n)
	}

	n = padBytesNeeded(3)
	if n != 1 {
		t.Errorf("Number of pad bytes should be 1 and is: %d", n)
	}

	n = padBytesNeeded(1)
	if n != 3 {
		t.Errorf("Number of pad bytes should be 3 and is: %d", n)
	}

	n = padBytesNeeded(0)
	if n != 0 {
		t.Errorf("Number of pad bytes should be 0 and is: %d", n)
	}

	n = padBytesNeeded(32)
	if n != 0 {
		t.Errorf("Number of pad bytes should be 0 and is: %d", n)
	}

	n = padBytesNeeded(63)
	if n != 1 {
		t.Errorf("Number of pad bytes should be 1 and is: %d", n)
	}

	n = padBytesNeeded(10)
	if n != 2 {
		t.Errorf("Number of pad bytes should be 2 and is: %d", n)
	}
}
