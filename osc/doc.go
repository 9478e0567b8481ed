//Package osc implements the Open Sound Control 1.0 wire format: parsing a
//raw byte buffer into a Message or Bundle and serializing those values back
//to bytes.
//
//This implementation is based on the Open Sound Control 1.0 Specification
//(http://opensoundcontrol.org/spec-1_0.html). Transport (UDP, TCP, IPC) and
//address dispatching are out of scope; the package is a pure codec.
//
//Features
//
//- Supports OSC messages with the following TypeTags:
//
//	'i' (Int32)
//	'f' (Float32)
//	's' (String)
//	'b' (Blob)
//	'h' (Int64)
//	't' (Timetag)
//	'd' (Float64)
//	'S' (Symbol)
//	'c' (Char)
//	'r' (Color)
//	'm' (MIDI)
//	'T' (Bool true)
//	'F' (Bool false)
//	'N' (Nil)
//	'I' (Infinitum)
//	'[' ']' (Array, one level deep)
//
//- Supports OSC bundles, including TimeTags
//
//Packets
//
//The unit of transmission of OSC is an OSC Packet, a contiguous block of
//binary data. OSC packets come in two flavors:
//
//OSC Messages: an OSC message consists of an OSC address pattern and zero or
//more typed arguments.
//
//OSC Bundles: an OSC Bundle consists of an OSC Timetag followed by zero or
//more size-framed messages.
//
//Usage
//
//Decoding:
//  packet, err := osc.ParsePacket(buf)
//  switch p := packet.(type) {
//  case *osc.Message:
//      fmt.Println(p)
//  case *osc.Bundle:
//      fmt.Println(p.Timetag, len(p.Elements))
//  }
//
//Encoding:
//  msg := osc.NewMessage("/osc/address", osc.Int32(111), osc.Bool(true), osc.String("hello"))
//  buf, err := msg.MarshalBinary()
//
//All operations are pure functions of their input and are safe to call
//concurrently.
package osc
