package main

import (
	"context"
	"errors"
	"io"
	"net"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/halvorsen/wsforge/internal/wsconn"
	"github.com/halvorsen/wsforge/pkg/websocket"
)

// readChunkSize is how much we try to read from the socket per
// recv(2) call. It bounds nothing about frame size; the engine itself
// has no payload-size limit, and enforcing one is left to whatever
// policy layer a real deployment wants on top of it.
const readChunkSize = 4096

// handleConn is the framed-I/O adapter: it owns the socket and a
// growable [websocket.Buffer], and repeatedly polls
// [websocket.Codec.Decode] until it returns nil, dispatching each
// event to the echo application below.
func handleConn(ctx context.Context, conn net.Conn, entry wsconn.Entry) {
	defer conn.Close()

	connLog := log.With().Str("conn_id", entry.Label).Str("remote_addr", entry.RemoteAddr).Logger()
	connLog.Info().Msg("connection accepted")

	codec := websocket.NewCodec(ctx)
	in := websocket.NewBuffer(nil)
	out := websocket.NewBuffer(nil)

	chunk := make([]byte, readChunkSize)
	for {
		n, err := conn.Read(chunk)
		if n > 0 {
			in.Write(chunk[:n])

			if closeErr := drain(codec, in, out, entry.ID, connLog); closeErr != nil {
				connLog.Info().Err(closeErr).Msg("closing connection")
				flush(conn, out, connLog)
				return
			}
			flush(conn, out, connLog)
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				connLog.Warn().Err(err).Msg("read error")
			}
			connLog.Info().Msg("connection closed")
			return
		}
	}
}

// drain decodes every complete event currently buffered in in, and
// runs the echo application's reaction to each one, appending any
// reply frames to out. It returns the codec's own error when decoding
// fails, and errConnClosing once the application has decided to close
// the connection.
func drain(codec *websocket.Codec, in, out *websocket.Buffer, id uuid.UUID, connLog zerolog.Logger) error {
	for {
		event, err := codec.Decode(in)
		if err != nil {
			return err
		}
		if event == nil {
			return nil // Partial: wait for more bytes.
		}

		if closing := echo(codec, *event, out, connLog); closing {
			return errConnClosing
		}
	}
}

var errConnClosing = errors.New("wsforged: application closed the connection")

// echo is the demo application: it replies to Ping with Pong, to Close
// with Close, and echoes Text/Binary frames back unchanged. Deciding
// how to react to control frames, and reassembling fragmented
// messages, is an application concern the codec itself stays out of;
// this demo keeps it trivial by not reassembling: it echoes each frame,
// continuation frames included, with the FIN bit it arrived with, so a
// fragmented message comes back fragmented the same way.
func echo(codec *websocket.Codec, event websocket.InboundEvent, out *websocket.Buffer, connLog zerolog.Logger) (closing bool) {
	switch event.Kind {
	case websocket.EventOpen:
		connLog.Debug().Msg("handshake parsed")
		return false

	case websocket.EventFrame:
		f := event.Frame
		switch f.Header.Opcode {
		case websocket.OpcodePing:
			reply := websocket.Frame{
				Header:  websocket.FrameHeader{IsFinal: true, Opcode: websocket.OpcodePong, PayloadLen: f.Header.PayloadLen},
				Payload: f.UnmaskedPayload(),
			}
			_ = codec.Encode(reply, out)
			return false

		case websocket.OpcodeClose:
			status, reason := websocket.ParseCloseFramePayload(f.UnmaskedPayload())
			connLog.Info().Str("status", status.String()).Str("reason", reason).Msg("received close")
			payload := websocket.BuildCloseFramePayload(status, "")
			reply := websocket.Frame{
				Header:  websocket.FrameHeader{IsFinal: true, Opcode: websocket.OpcodeClose, PayloadLen: uint64(len(payload))},
				Payload: payload,
			}
			_ = codec.Encode(reply, out)
			return true

		case websocket.OpcodeText, websocket.OpcodeBinary, websocket.OpcodeContinuation:
			reply := websocket.Frame{
				Header:  websocket.FrameHeader{IsFinal: f.Header.IsFinal, Opcode: f.Header.Opcode, PayloadLen: f.Header.PayloadLen},
				Payload: f.UnmaskedPayload(),
			}
			_ = codec.Encode(reply, out)
			return false

		case websocket.OpcodePong:
			return false
		}
	}

	return false
}

// flush writes and clears anything the codec queued up in out.
func flush(conn net.Conn, out *websocket.Buffer, connLog zerolog.Logger) {
	if out.Len() == 0 {
		return
	}
	if _, err := conn.Write(out.Take(out.Len())); err != nil {
		connLog.Warn().Err(err).Msg("write error")
	}
}
