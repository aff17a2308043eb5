package websocket

// EventKind tags the two cases an [InboundEvent] can carry. Modeled as
// a closed sum type rather than an interface hierarchy: the codec only
// ever needs to distinguish "handshake just completed" from "a frame
// arrived", and a tag plus a payload field says that directly.
type EventKind int

const (
	// EventOpen is emitted exactly once per connection, immediately
	// after the handshake succeeds.
	EventOpen EventKind = iota

	// EventFrame is emitted for every subsequently, completely
	// received frame. [InboundEvent.Frame] holds it.
	EventFrame
)

// InboundEvent is what [Codec.Decode] hands to the host for each
// completed unit of inbound protocol work.
type InboundEvent struct {
	Kind EventKind

	// Frame is populated when Kind == EventFrame, and is the
	// zero Frame otherwise.
	Frame Frame
}

// OutboundMessage is, for this engine, identical to [Frame]. The
// façade may additionally write a synthetic 101 response during the
// Upgrading transition, but applications never construct that
// response directly — they only ever hand the façade frames.
type OutboundMessage = Frame
