package websocket

import (
	"context"
	"log/slog"

	"github.com/halvorsen/wsforge/internal/logger"
)

// Codec is the single façade an external I/O layer drives: it holds
// the [ConnState] for one connection and the Sec-WebSocket-Key captured
// by the handshake parser until the 101 response is written, and exposes exactly two operations — Decode and Encode — to
// whatever host loop owns the socket.
//
// A Codec is not safe for concurrent use: the host must guarantee that
// Decode and Encode are never called concurrently for the same
// connection, though it may freely multiplex many Codecs (one per
// connection) across goroutines.
type Codec struct {
	state        ConnState
	handshakeKey string
	logger       *slog.Logger
}

// NewCodec returns a Codec in [StateAwaitingHandshake], ready to be
// driven by a framed-I/O adapter. The logger carried on ctx (if any,
// via [logger.InContext]) is used for the codec's own diagnostics;
// otherwise the default slog logger is used.
func NewCodec(ctx context.Context) *Codec {
	return &Codec{logger: logger.FromContext(ctx)}
}

// State returns the connection's current state.
func (c *Codec) State() ConnState {
	return c.state
}

// Decode consumes as much of buf as it can and returns at most one
// [InboundEvent]. It returns (nil, nil) when buf doesn't yet hold a
// complete handshake request or frame — the Partial case — leaving
// buf untouched; the host is expected to poll Decode again after
// feeding it more bytes. On a protocol error, Decode transitions the
// connection to [StateClosed] and returns the error; the host should
// treat that as terminal and close the transport.
func (c *Codec) Decode(buf *Buffer) (*InboundEvent, error) {
	switch c.state {
	case StateAwaitingHandshake:
		key, ok, err := ParseHandshake(buf)
		if err != nil {
			c.state = StateClosed
			c.logger.Error("websocket handshake failed", slog.Any("error", err))
			return nil, err
		}
		if !ok {
			return nil, nil
		}

		c.handshakeKey = key
		c.state = StateUpgrading
		c.logger.Debug("websocket handshake parsed", slog.Int("key_length", len(key)))
		return &InboundEvent{Kind: EventOpen}, nil

	case StateUpgrading, StateEstablished:
		f, err := DecodeFrame(buf)
		if err != nil {
			c.state = StateClosed
			c.logger.Error("websocket frame decode failed", slog.Any("error", err))
			return nil, err
		}
		if f == nil {
			return nil, nil
		}

		c.logger.Debug("websocket frame received",
			slog.Bool("fin", f.Header.IsFinal),
			slog.String("opcode", f.Header.Opcode.String()),
			slog.Uint64("payload_len", f.Header.PayloadLen))
		return &InboundEvent{Kind: EventFrame, Frame: *f}, nil

	default: // StateClosed
		return nil, nil
	}
}

// Encode writes msg's wire form to buf. While the connection is
// [StateUpgrading], Encode first writes the 101 handshake response
// (computed from the key [Codec.Decode] captured) and advances the
// connection to [StateEstablished] before encoding msg as a frame —
// the 101 response is always written before any Established-state
// frame on the same connection. Encoding before the handshake has
// produced a key fails with [ErrEncodeBeforeUpgrade].
func (c *Codec) Encode(msg OutboundMessage, buf *Buffer) error {
	switch c.state {
	case StateAwaitingHandshake:
		return ErrEncodeBeforeUpgrade

	case StateUpgrading:
		WriteHandshakeAccept(buf, c.handshakeKey)
		c.handshakeKey = ""
		c.state = StateEstablished
		c.logger.Debug("websocket handshake accepted, connection established")
		EncodeFrame(msg, buf)
		return nil

	case StateEstablished:
		EncodeFrame(msg, buf)
		return nil

	default: // StateClosed
		return ErrConnClosed
	}
}
