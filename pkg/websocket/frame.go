package websocket

import "unicode/utf8"

// FrameHeader is the metadata that precedes a frame's payload on the
// wire, as defined in https://datatracker.ietf.org/doc/html/rfc6455#section-5.2.
type FrameHeader struct {
	// IsFinal is the FIN bit: true if this is the last fragment of a
	// message. The first fragment MAY also be the final fragment.
	IsFinal bool

	// Opcode defines the interpretation of the payload.
	Opcode Opcode

	// IsMasked is the MASK bit. All frames sent from client to server
	// MUST have it set, per https://datatracker.ietf.org/doc/html/rfc6455#section-5.3.
	// This engine tolerates unmasked frames on decode; it is the
	// application's job to enforce masking policy, if any.
	IsMasked bool

	// PayloadLen is the length of Frame.Payload, in bytes.
	PayloadLen uint64

	// MaskingKey is the 32-bit masking key, semantically absent (and
	// represented as 0) when IsMasked is false. Kept as a single
	// integer rather than a [4]byte, since the four key bytes are just
	// its big-endian octets — storing both would duplicate the
	// invariant and let them drift out of sync.
	MaskingKey uint32
}

// Frame pairs a [FrameHeader] with its payload, stored exactly as
// received or as constructed on the wire: still masked, if
// Header.IsMasked is true. Unmasking is a view ([Frame.PayloadAsText]),
// not a transformation performed at decode time — this keeps the
// decoder allocation-light and defers unmasking to the rare consumer
// that needs plaintext.
type Frame struct {
	Header  FrameHeader
	Payload []byte
}

// NewTextFrame builds a final Text frame from a UTF-8 string. If
// maskingKey is non-nil, the payload is masked in place with it and
// the returned frame's header reports IsMasked and the given key;
// PayloadLen is always the plaintext length, since masking is
// length-preserving.
func NewTextFrame(text string, maskingKey *uint32) Frame {
	payload := []byte(text)

	f := Frame{
		Header: FrameHeader{
			IsFinal:    true,
			Opcode:     OpcodeText,
			PayloadLen: uint64(len(payload)),
		},
		Payload: payload,
	}

	if maskingKey != nil {
		f.Header.IsMasked = true
		f.Header.MaskingKey = *maskingKey
		maskBytes(f.Payload, *maskingKey)
	}

	return f
}

// NewBinaryFrame builds a final Binary frame, masked the same way as
// [NewTextFrame].
func NewBinaryFrame(data []byte, maskingKey *uint32) Frame {
	payload := make([]byte, len(data))
	copy(payload, data)

	f := Frame{
		Header: FrameHeader{
			IsFinal:    true,
			Opcode:     OpcodeBinary,
			PayloadLen: uint64(len(payload)),
		},
		Payload: payload,
	}

	if maskingKey != nil {
		f.Header.IsMasked = true
		f.Header.MaskingKey = *maskingKey
		maskBytes(f.Payload, *maskingKey)
	}

	return f
}

// UnmaskedPayload returns a copy of the frame's payload in plaintext:
// unmasked with Header.MaskingKey when Header.IsMasked is true, or
// just copied as-is otherwise. Unlike [Frame.PayloadAsText], it makes
// no claim about the bytes being valid UTF-8 — applications that need
// to relay or inspect a Binary, Ping, Pong, or Close payload use this
// instead.
func (f Frame) UnmaskedPayload() []byte {
	data := make([]byte, len(f.Payload))
	copy(data, f.Payload)
	if f.Header.IsMasked {
		maskBytes(data, f.Header.MaskingKey)
	}
	return data
}

// PayloadAsText returns the frame's payload as a UTF-8 string. When
// the frame isn't masked, this is a direct copy of the payload bytes;
// otherwise the payload is XOR-unmasked with Header.MaskingKey first.
// Fails with [ErrInvalidUTF8] when the (possibly unmasked) bytes
// aren't valid UTF-8.
func (f Frame) PayloadAsText() (string, error) {
	data := f.UnmaskedPayload()

	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}

	return string(data), nil
}

// maskKeyBytes splits a 32-bit masking key into its four big-endian
// octets, per https://datatracker.ietf.org/doc/html/rfc6455#section-5.3.
func maskKeyBytes(key uint32) [4]byte {
	return [4]byte{
		byte(key >> 24),
		byte(key >> 16),
		byte(key >> 8),
		byte(key),
	}
}

// maskBytes applies the WebSocket masking algorithm to data in place:
//
//	transformed-octet-i = original-octet-i XOR masking-key-octet-(i mod 4)
//
// It is its own inverse: applying it twice restores the original bytes.
func maskBytes(data []byte, key uint32) {
	k := maskKeyBytes(key)
	for i := range data {
		data[i] ^= k[i%4]
	}
}
