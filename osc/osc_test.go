package osc

import (
	"encoding/binary"
	"math"
)

// testCase is a canonical value/bytes pair: obj must marshal to exactly raw,
// and raw must unmarshal to exactly obj.
type testCase struct {
	name string
	obj  Packet
	raw  []byte
}

func be32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

func be64(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func be32f(v float32) []byte { return be32(math.Float32bits(v)) }

func be64f(v float64) []byte { return be64(math.Float64bits(v)) }

func cat(chunks ...[]byte) []byte {
	var b []byte
	for _, c := range chunks {
		b = append(b, c...)
	}
	return b
}

// The 12-byte reference message: address "/foo" sits exactly on a 4-byte
// boundary so no address padding is emitted, the tag string ",i" is padded
// to ",i\x00\x00", and 42 follows as a big-endian int32.
var (
	fooMessage = &Message{Address: "/foo", Arguments: []Argument{Int32(42)}}
	fooRaw     = cat([]byte("/foo,i\x00\x00"), be32(42))
)

var messageTestCases = []testCase{
	{
		name: "int32",
		obj:  fooMessage,
		raw:  fooRaw,
	},
	{
		name: "no arguments",
		obj:  &Message{Address: "/a"},
		raw:  []byte("/a\x00\x00,\x00\x00\x00"),
	},
	{
		// "abcd" is already a multiple of 4 bytes, so it is written with no
		// terminator at all; the following int32 starts immediately.
		name: "string length multiple of four",
		obj:  &Message{Address: "/s", Arguments: []Argument{String("abcd"), Int32(42)}},
		raw:  cat([]byte("/s\x00\x00,si\x00abcd"), be32(42)),
	},
	{
		name: "array of three ints",
		obj:  &Message{Address: "/a/b", Arguments: []Argument{Array{Int32(1), Int32(2), Int32(3)}}},
		raw:  cat([]byte("/a/b,[iii]\x00\x00"), be32(1), be32(2), be32(3)),
	},
	{
		name: "array between scalars",
		obj: &Message{Address: "/mix", Arguments: []Argument{
			Int32(7),
			Array{String("in"), Bool(true)},
			Symbol("end"),
		}},
		raw: cat([]byte("/mix,i[sT]S\x00"), be32(7), []byte("in\x00\x00end\x00")),
	},
	{
		name: "all scalars",
		obj: &Message{Address: "/scalars", Arguments: []Argument{
			Int32(1),
			Float32(3.5),
			String("hello"),
			Blob{1, 2, 3},
			Int64(-2),
			Timetag(1),
			Float64(2.5),
			Symbol("sym"),
			Char('x'),
			Color{R: 1, G: 2, B: 3, A: 4},
			MIDI{Port: 9, Status: 8, Data1: 7, Data2: 6},
			Bool(true),
			Bool(false),
			Nil{},
			Infinitum{},
		}},
		raw: cat(
			[]byte("/scalars,ifsbhtdScrmTFNI"),
			be32(1),
			be32f(3.5),
			[]byte("hello\x00\x00\x00"),
			be32(3), []byte{1, 2, 3, 0},
			be64(0xfffffffffffffffe),
			be64(1),
			be64f(2.5),
			[]byte("sym\x00"),
			be32('x'),
			[]byte{1, 2, 3, 4},
			[]byte{9, 8, 7, 6},
		),
	},
}

var bundleTestCases = []testCase{
	{
		name: "single element",
		obj:  &Bundle{Timetag: 1, Elements: []*Message{fooMessage}},
		raw:  cat([]byte("#bundle\x00"), be64(1), be32(12), fooRaw),
	},
	{
		name: "two elements",
		obj: &Bundle{Timetag: 0x123456789, Elements: []*Message{
			fooMessage,
			{Address: "/a"},
		}},
		raw: cat(
			[]byte("#bundle\x00"), be64(0x123456789),
			be32(12), fooRaw,
			be32(8), []byte("/a\x00\x00,\x00\x00\x00"),
		),
	},
	{
		name: "empty",
		obj:  &Bundle{Timetag: 1},
		raw:  cat([]byte("#bundle\x00"), be64(1)),
	},
}
