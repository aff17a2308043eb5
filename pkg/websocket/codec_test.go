package websocket

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// Scenario 5: handshake, then the 101 response must precede the first
// encoded frame, with Sec-WebSocket-Accept computed from the captured key.
func TestCodecHandshakeThenFrameSequencing(t *testing.T) {
	codec := NewCodec(context.Background())
	if codec.State() != StateAwaitingHandshake {
		t.Fatalf("initial state = %v, want StateAwaitingHandshake", codec.State())
	}

	req := "GET /chat HTTP/1.1\r\n" +
		"Sec-WebSocket-Key: dGhlIHNhbXBsZSBub25jZQ==\r\n" +
		"\r\n"
	in := NewBuffer([]byte(req))

	event, err := codec.Decode(in)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if event == nil || event.Kind != EventOpen {
		t.Fatalf("event = %+v, want EventOpen", event)
	}
	if codec.State() != StateUpgrading {
		t.Fatalf("state after handshake = %v, want StateUpgrading", codec.State())
	}

	out := NewBuffer(nil)
	reply := NewTextFrame("hi", nil)
	if err := codec.Encode(reply, out); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if codec.State() != StateEstablished {
		t.Fatalf("state after first Encode = %v, want StateEstablished", codec.State())
	}

	written := string(out.Bytes())
	wantPrefix := "HTTP/1.1 101 Switching Protocols\r\n" +
		"Upgrade: websocket\r\n" +
		"Connection: Upgrade\r\n" +
		"Sec-WebSocket-Accept: s3pPLMBiTxaQ9kYGzzhZRbK+xOo=\r\n\r\n"
	if !strings.HasPrefix(written, wantPrefix) {
		t.Fatalf("Encode() output = %q, want prefix %q", written, wantPrefix)
	}

	// What follows the 101 response headers is the encoded frame itself.
	frameBuf := NewBuffer([]byte(written[len(wantPrefix):]))
	got, err := DecodeFrame(frameBuf)
	if err != nil {
		t.Fatalf("re-decoding the encoded frame failed: %v", err)
	}
	if got == nil || string(got.Payload) != "hi" {
		t.Fatalf("re-decoded frame = %+v, want payload \"hi\"", got)
	}
}

func TestCodecUpgradingAlreadyDecodesFrames(t *testing.T) {
	codec := NewCodec(context.Background())
	in := NewBuffer([]byte("GET / HTTP/1.1\r\nSec-WebSocket-Key: dGhlIHNhbXBsZSBub25jZQ==\r\n\r\n"))

	if _, err := codec.Decode(in); err != nil {
		t.Fatalf("handshake Decode() error = %v", err)
	}
	if codec.State() != StateUpgrading {
		t.Fatalf("state = %v, want StateUpgrading", codec.State())
	}

	frame := Frame{Header: FrameHeader{IsFinal: true, Opcode: OpcodePing, PayloadLen: 0}}
	EncodeFrame(frame, in)

	event, err := codec.Decode(in)
	if err != nil {
		t.Fatalf("Decode() in StateUpgrading error = %v", err)
	}
	if event == nil || event.Kind != EventFrame || event.Frame.Header.Opcode != OpcodePing {
		t.Fatalf("event = %+v, want a Ping EventFrame", event)
	}
}

func TestCodecEncodeBeforeUpgradeFails(t *testing.T) {
	codec := NewCodec(context.Background())
	out := NewBuffer(nil)

	err := codec.Encode(NewTextFrame("too early", nil), out)
	if !errors.Is(err, ErrEncodeBeforeUpgrade) {
		t.Fatalf("Encode() error = %v, want ErrEncodeBeforeUpgrade", err)
	}
}

func TestCodecEncodeAfterCloseFails(t *testing.T) {
	codec := NewCodec(context.Background())
	in := NewBuffer([]byte("GET / HTTP/1.1\r\nSec-WebSocket-Key: dGhlIHNhbXBsZSBub25jZQ==\r\n\r\n"))
	if _, err := codec.Decode(in); err != nil {
		t.Fatalf("handshake Decode() error = %v", err)
	}
	in.Write([]byte{0x83, 0x00}) // invalid opcode -> decode error -> StateClosed.

	if _, err := codec.Decode(in); !errors.Is(err, ErrInvalidOpcode) {
		t.Fatalf("Decode() error = %v, want ErrInvalidOpcode", err)
	}
	if codec.State() != StateClosed {
		t.Fatalf("state after decode error = %v, want StateClosed", codec.State())
	}

	out := NewBuffer(nil)
	if err := codec.Encode(NewTextFrame("x", nil), out); !errors.Is(err, ErrConnClosed) {
		t.Fatalf("Encode() after close error = %v, want ErrConnClosed", err)
	}
}

func TestCodecDecodeAfterCloseIsInert(t *testing.T) {
	codec := NewCodec(context.Background())
	in := NewBuffer([]byte("GET / HTTP/1.1\r\nSec-WebSocket-Key: dGhlIHNhbXBsZSBub25jZQ==\r\n\r\n"))
	if _, err := codec.Decode(in); err != nil {
		t.Fatalf("handshake Decode() error = %v", err)
	}
	in.Write([]byte{0x83, 0x00})
	if _, err := codec.Decode(in); err == nil {
		t.Fatal("expected a decode error to close the connection")
	}

	event, err := codec.Decode(NewBuffer([]byte{0x82, 0x00}))
	if err != nil || event != nil {
		t.Fatalf("Decode() on a closed connection = (%v, %v), want (nil, nil)", event, err)
	}
}
