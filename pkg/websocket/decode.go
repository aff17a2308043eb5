package websocket

import (
	"encoding/binary"
	"math"
)

// lengthMarker values from https://datatracker.ietf.org/doc/html/rfc6455#section-5.2.
const (
	maxLen7Bit  = 125 // 0-125: the 7-bit length field carries the payload length directly.
	lenMarker16 = 126 // followed by a 16-bit big-endian extended length.
	lenMarker64 = 127 // followed by a 64-bit big-endian extended length.
)

// DecodeFrame parses one frame from the front of buf.
//
// DecodeFrame is resumable: if buf doesn't yet hold a complete frame,
// it returns (nil, nil) and leaves buf completely untouched — byte 0.
// Callers are expected to feed more bytes into buf and call
// DecodeFrame again; they must never re-present a prefix buf has
// already consumed. The one exception is a header whose 7-bit length
// marker says 126 or 127 but whose extended length or masking key is
// not all in buf: that fails with [ErrShortHeader] instead.
//
// On success, the consumed bytes (header and payload) are removed
// from the front of buf, and the returned Frame's payload is an owned
// copy that doesn't alias buf's backing array.
//
// DecodeFrame never validates control-frame constraints (payload
// length <= 125, FIN required) — that policy belongs to a layer above
// this engine, per https://datatracker.ietf.org/doc/html/rfc6455#section-5.5.
func DecodeFrame(buf *Buffer) (*Frame, error) {
	raw := buf.Bytes()

	if len(raw) < 2 {
		return nil, nil // Partial: not even a base header yet.
	}

	isFinal := raw[0]&0x80 != 0
	opcode, ok := opcodeFromWire(raw[0] & 0x0F)
	if !ok {
		return nil, ErrInvalidOpcode
	}

	isMasked := raw[1]&0x80 != 0
	len7 := raw[1] & 0x7F

	var payloadLen uint64
	headerWidth := 2

	switch len7 {
	case lenMarker16:
		if len(raw) < 4 {
			return nil, ErrShortHeader
		}
		payloadLen = uint64(binary.BigEndian.Uint16(raw[2:4]))
		headerWidth = 4
	case lenMarker64:
		if len(raw) < 10 {
			return nil, ErrShortHeader
		}
		payloadLen = binary.BigEndian.Uint64(raw[2:10])
		if payloadLen > math.MaxInt {
			return nil, ErrLengthOverflow
		}
		headerWidth = 10
	default:
		payloadLen = uint64(len7)
	}

	var maskingKey uint32
	if isMasked {
		if len(raw) < headerWidth+4 {
			if len7 <= maxLen7Bit {
				return nil, nil // Partial: masking key of a 7-bit-length frame hasn't arrived yet.
			}
			return nil, ErrShortHeader
		}
		maskingKey = binary.BigEndian.Uint32(raw[headerWidth : headerWidth+4])
		headerWidth += 4
	}

	if uint64(len(raw)) < uint64(headerWidth)+payloadLen {
		return nil, nil // Partial: header parsed, but payload hasn't fully arrived.
	}

	buf.Advance(headerWidth)
	payload := buf.Take(int(payloadLen))

	return &Frame{
		Header: FrameHeader{
			IsFinal:    isFinal,
			Opcode:     opcode,
			IsMasked:   isMasked,
			PayloadLen: payloadLen,
			MaskingKey: maskingKey,
		},
		Payload: payload,
	}, nil
}
