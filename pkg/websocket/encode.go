package websocket

import "encoding/binary"

// EncodeFrame appends the wire form of f to buf. It does not re-mask
// the payload: callers that construct masked frames (see
// [NewTextFrame]) are responsible for having masked the payload
// already. EncodeFrame computes the exact number of bytes it needs up
// front and grows buf once.
func EncodeFrame(f Frame, buf *Buffer) {
	n := frameWireLen(f.Header)
	out := make([]byte, 0, n)

	b0 := byte(f.Header.Opcode) & 0x0F
	if f.Header.IsFinal {
		b0 |= 0x80
	}
	out = append(out, b0)

	var b1 byte
	if f.Header.IsMasked {
		b1 = 0x80
	}

	switch {
	case f.Header.PayloadLen <= maxLen7Bit:
		out = append(out, b1|byte(f.Header.PayloadLen))
	case f.Header.PayloadLen <= 0xFFFF:
		out = append(out, b1|lenMarker16)
		var ext [2]byte
		binary.BigEndian.PutUint16(ext[:], uint16(f.Header.PayloadLen))
		out = append(out, ext[:]...)
	default:
		out = append(out, b1|lenMarker64)
		var ext [8]byte
		binary.BigEndian.PutUint64(ext[:], f.Header.PayloadLen)
		out = append(out, ext[:]...)
	}

	if f.Header.IsMasked {
		var key [4]byte
		binary.BigEndian.PutUint32(key[:], f.Header.MaskingKey)
		out = append(out, key[:]...)
	}

	out = append(out, f.Payload...)

	buf.Write(out)
}

// frameWireLen computes the exact number of bytes [EncodeFrame] will
// write for a frame with the given header, so the output buffer can be
// grown exactly once.
func frameWireLen(h FrameHeader) int {
	n := 2 + int(h.PayloadLen)
	switch {
	case h.PayloadLen > 0xFFFF:
		n += 8
	case h.PayloadLen > maxLen7Bit:
		n += 2
	}
	if h.IsMasked {
		n += 4
	}
	return n
}
