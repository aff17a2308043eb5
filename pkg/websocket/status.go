package websocket

import (
	"encoding/binary"
	"strconv"
	"unicode/utf8"
)

// StatusCode is a reason for closing an established WebSocket
// connection, as defined in
// https://datatracker.ietf.org/doc/html/rfc6455#section-7.4.
//
// This engine's core never interprets or reacts to Close frames —
// responding to Close with Close is the application's job. StatusCode
// and [BuildCloseFramePayload] exist purely as a convenience for
// applications that want to build a well-formed Close payload without
// hand-rolling the two-byte status prefix.
//
// Other status code ranges:
//   - 0-999: not used
//   - 3000-3999: reserved for use by libraries, frameworks, and applications
//   - 4000-4999: reserved for private use and thus can't be registered
type StatusCode uint16

const (
	StatusNormalClosure   StatusCode = 1000
	StatusGoingAway       StatusCode = 1001
	StatusProtocolError   StatusCode = 1002
	StatusUnsupportedData StatusCode = 1003
	StatusInvalidData     StatusCode = 1007
	StatusPolicyViolation StatusCode = 1008
	StatusMessageTooBig   StatusCode = 1009
	StatusInternalError   StatusCode = 1011
)

// String returns the status code's name, or its number if unrecognized.
func (s StatusCode) String() string {
	switch s {
	case StatusNormalClosure:
		return "normal closure"
	case StatusGoingAway:
		return "going away"
	case StatusProtocolError:
		return "protocol error"
	case StatusUnsupportedData:
		return "unsupported data"
	case StatusInvalidData:
		return "invalid data"
	case StatusPolicyViolation:
		return "policy violation"
	case StatusMessageTooBig:
		return "message too big"
	case StatusInternalError:
		return "internal error"
	default:
		return strconv.Itoa(int(s))
	}
}

// maxCloseReason is the maximum length of a Close frame's reason text:
// control frame payloads are capped at 125 bytes, minus the 2-byte
// status code prefix.
const maxCloseReason = maxLen7Bit - 2

// BuildCloseFramePayload builds the payload of a Close control frame:
// a two-byte big-endian status code, optionally followed by a UTF-8
// reason. The reason is truncated if it would overflow a control
// frame's 125-byte payload limit.
func BuildCloseFramePayload(status StatusCode, reason string) []byte {
	if len(reason) > maxCloseReason {
		reason = reason[:maxCloseReason]
	}

	payload := make([]byte, 2+len(reason))
	binary.BigEndian.PutUint16(payload, uint16(status))
	copy(payload[2:], reason)
	return payload
}

// ParseCloseFramePayload extracts the [StatusCode] and optional UTF-8
// reason from a received Close control frame's payload. An empty
// payload reports [StatusNormalClosure] with no reason, per
// https://datatracker.ietf.org/doc/html/rfc6455#section-7.1.5. A
// reason that isn't valid UTF-8 is dropped rather than surfaced.
func ParseCloseFramePayload(payload []byte) (status StatusCode, reason string) {
	switch {
	case len(payload) == 0:
		return StatusNormalClosure, ""
	case len(payload) == 1:
		return StatusProtocolError, ""
	}

	status = StatusCode(binary.BigEndian.Uint16(payload))
	if r := payload[2:]; utf8.Valid(r) {
		reason = string(r)
	}
	return status, reason
}
