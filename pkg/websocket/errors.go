package websocket

import "errors"

// Decode errors. All of these except [ErrInvalidUTF8], which only
// [Frame.PayloadAsText] returns and whose handling is up to the
// application, are terminal for the connection: the
// host is expected to stop driving this [Codec] and close the
// transport. A Partial read (not enough bytes yet) is not an error;
// [Codec.Decode] returns (nil, nil) for that case, and leaves the
// input buffer untouched.
var (
	// ErrInvalidOpcode is returned when a frame's 4-bit opcode nibble
	// is not one of the six values RFC 6455 defines.
	ErrInvalidOpcode = errors.New("websocket: invalid opcode")

	// ErrShortHeader is returned when the 7-bit length marker says 126
	// or 127, but the buffer doesn't (yet) hold enough bytes to read
	// the extended length or masking key. Deliberately distinct from a
	// Partial return: by the time the 7-bit length marker is visible,
	// the sender has committed to sending the rest of a fixed-width
	// header, so a short read here points at a malformed or truncated
	// stream rather than ordinary network chunking.
	ErrShortHeader = errors.New("websocket: short frame header")

	// ErrLengthOverflow is returned when a 64-bit extended payload
	// length cannot be represented by this host's addressable range.
	ErrLengthOverflow = errors.New("websocket: payload length overflow")

	// ErrHandshakeMalformed is returned when a complete HTTP header
	// block presented to the handshake parser carries no
	// Sec-WebSocket-Key header. The request line is not validated.
	ErrHandshakeMalformed = errors.New("websocket: malformed handshake request")

	// ErrInvalidUTF8 is returned by [Frame.PayloadAsText] when the
	// (possibly unmasked) payload bytes are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("websocket: invalid UTF-8 payload")
)

// Encode errors.
var (
	// ErrEncodeBeforeUpgrade is returned by [Codec.Encode] when the
	// caller tries to write an application frame before the handshake
	// has produced a Sec-WebSocket-Key to upgrade with.
	ErrEncodeBeforeUpgrade = errors.New("websocket: encode called before handshake upgrade")

	// ErrConnClosed is returned by [Codec.Encode] once the connection
	// has reached its terminal Closed state (reached after a decode
	// error; see [ConnState]).
	ErrConnClosed = errors.New("websocket: connection is closed")
)
