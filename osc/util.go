package osc

import (
	"bytes"
	"sync"
)

// MaxPacketSize is the largest encoded packet the marshal path will emit,
// matching the maximum payload of the UDP datagrams that usually carry OSC.
const MaxPacketSize = 65507

var bufPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, MaxPacketSize))
	},
}
