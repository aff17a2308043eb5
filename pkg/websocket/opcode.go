package websocket

import "strconv"

// Opcode denotes the type of a WebSocket frame, as defined in
// https://datatracker.ietf.org/doc/html/rfc6455#section-5.2 and
// https://datatracker.ietf.org/doc/html/rfc6455#section-11.8.
//
// This is a closed enumeration: exactly six values are valid on the
// wire. Every other 4-bit opcode nibble is rejected by [DecodeFrame].
type Opcode byte

const (
	OpcodeContinuation Opcode = 0x0
	OpcodeText         Opcode = 0x1
	OpcodeBinary       Opcode = 0x2
	// 0x3-0x7 are reserved for further non-control frames.
	OpcodeClose Opcode = 0x8
	OpcodePing  Opcode = 0x9
	OpcodePong  Opcode = 0xA
	// 0xB-0xF are reserved for further control frames.
)

// String returns the opcode's name, or its number if it's unrecognized.
func (o Opcode) String() string {
	switch o {
	case OpcodeContinuation:
		return "continuation"
	case OpcodeText:
		return "text"
	case OpcodeBinary:
		return "binary"
	case OpcodeClose:
		return "close"
	case OpcodePing:
		return "ping"
	case OpcodePong:
		return "pong"
	default:
		return strconv.Itoa(int(o))
	}
}

// IsControl reports whether the opcode is a control opcode (Close,
// Ping, or Pong), per https://datatracker.ietf.org/doc/html/rfc6455#section-5.5.
func (o Opcode) IsControl() bool {
	return o >= OpcodeClose
}

// opcodeFromWire converts a 4-bit wire nibble to an [Opcode]. It fails
// for any value outside the six defined by RFC 6455; this conversion
// is intentionally partial, unlike the total opcode-to-wire direction.
func opcodeFromWire(nibble byte) (Opcode, bool) {
	switch Opcode(nibble) {
	case OpcodeContinuation, OpcodeText, OpcodeBinary, OpcodeClose, OpcodePing, OpcodePong:
		return Opcode(nibble), true
	default:
		return 0, false
	}
}
