package websocket

// ConnState names where a single connection is in its lifecycle. It is
// owned exclusively by that connection's [Codec]; there is no global
// or thread-local state, and transitions are strictly monotonic — none
// of them ever regress.
type ConnState int

const (
	// StateAwaitingHandshake is the state every connection starts in:
	// the codec is looking for a complete HTTP/1.1 upgrade request.
	StateAwaitingHandshake ConnState = iota

	// StateUpgrading holds until the application produces its first
	// outbound value, at which point the 101 response is written and
	// the state advances to StateEstablished. Despite the name, a
	// connection in this state already decodes inbound bytes as
	// frames: RFC 6455 doesn't require the client to wait for the
	// response before it starts sending.
	StateUpgrading

	// StateEstablished is the steady state: inbound bytes decode as
	// frames, outbound values encode as frames.
	StateEstablished

	// StateClosed is terminal, reached when [Codec.Decode] returns a
	// handshake or frame decode error. There is no transition out of
	// it. The codec has no input for transport EOF: a host that sees
	// EOF stops driving the codec, which stays in its current state.
	StateClosed
)

// String returns the state's name.
func (s ConnState) String() string {
	switch s {
	case StateAwaitingHandshake:
		return "awaiting-handshake"
	case StateUpgrading:
		return "upgrading"
	case StateEstablished:
		return "established"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
