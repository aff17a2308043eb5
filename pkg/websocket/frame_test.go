package websocket

import (
	"bytes"
	"testing"
)

func TestMaskBytesIsSelfInverse(t *testing.T) {
	orig := []byte("the quick brown fox jumps over the lazy dog")
	data := make([]byte, len(orig))
	copy(data, orig)

	maskBytes(data, 0x37FA213D)
	if bytes.Equal(data, orig) {
		t.Fatal("masking did not change the payload")
	}

	maskBytes(data, 0x37FA213D)
	if !bytes.Equal(data, orig) {
		t.Fatal("masking twice with the same key did not restore the original bytes")
	}
}

func TestNewTextFrameUnmasked(t *testing.T) {
	f := NewTextFrame("hello", nil)

	if f.Header.Opcode != OpcodeText {
		t.Fatalf("opcode = %v, want Text", f.Header.Opcode)
	}
	if !f.Header.IsFinal {
		t.Fatal("IsFinal = false, want true")
	}
	if f.Header.IsMasked {
		t.Fatal("IsMasked = true, want false")
	}
	if f.Header.PayloadLen != 5 {
		t.Fatalf("PayloadLen = %d, want 5", f.Header.PayloadLen)
	}
	if string(f.Payload) != "hello" {
		t.Fatalf("Payload = %q, want %q", f.Payload, "hello")
	}
}

func TestNewTextFrameMasked(t *testing.T) {
	key := uint32(0x11121314)
	f := NewTextFrame("hello", &key)

	if !f.Header.IsMasked {
		t.Fatal("IsMasked = false, want true")
	}
	if f.Header.MaskingKey != key {
		t.Fatalf("MaskingKey = %#x, want %#x", f.Header.MaskingKey, key)
	}
	if f.Header.PayloadLen != 5 {
		t.Fatalf("PayloadLen = %d, want 5 (plaintext length)", f.Header.PayloadLen)
	}
	if bytes.Equal(f.Payload, []byte("hello")) {
		t.Fatal("Payload is still plaintext; NewTextFrame should mask in place")
	}

	text, err := f.PayloadAsText()
	if err != nil {
		t.Fatalf("PayloadAsText() error = %v", err)
	}
	if text != "hello" {
		t.Fatalf("PayloadAsText() = %q, want %q", text, "hello")
	}
}

func TestNewBinaryFrameMasked(t *testing.T) {
	key := uint32(0xDEADBEEF)
	data := []byte{0x00, 0x01, 0x02, 0x03, 0xFF}
	f := NewBinaryFrame(data, &key)

	if f.Header.Opcode != OpcodeBinary {
		t.Fatalf("opcode = %v, want Binary", f.Header.Opcode)
	}
	if !f.Header.IsMasked {
		t.Fatal("IsMasked = false, want true")
	}

	plain := f.UnmaskedPayload()
	if !bytes.Equal(plain, data) {
		t.Fatalf("UnmaskedPayload() = %v, want %v", plain, data)
	}
	// Original caller's slice must not have been aliased and mutated.
	if !bytes.Equal(data, []byte{0x00, 0x01, 0x02, 0x03, 0xFF}) {
		t.Fatal("NewBinaryFrame mutated the caller's input slice")
	}
}

func TestUnmaskedPayloadDoesNotAliasFramePayload(t *testing.T) {
	f := Frame{
		Header:  FrameHeader{IsMasked: false},
		Payload: []byte("abc"),
	}
	out := f.UnmaskedPayload()
	out[0] = 'z'
	if f.Payload[0] != 'a' {
		t.Fatal("UnmaskedPayload() returned a slice aliasing Frame.Payload")
	}
}

func TestPayloadAsTextInvalidUTF8(t *testing.T) {
	f := Frame{
		Header:  FrameHeader{IsMasked: false},
		Payload: []byte{0xFF, 0xFE, 0xFD},
	}
	if _, err := f.PayloadAsText(); err != ErrInvalidUTF8 {
		t.Fatalf("PayloadAsText() error = %v, want ErrInvalidUTF8", err)
	}
}

func TestOpcodeString(t *testing.T) {
	tests := []struct {
		op   Opcode
		want string
	}{
		{OpcodeContinuation, "continuation"},
		{OpcodeText, "text"},
		{OpcodeBinary, "binary"},
		{OpcodeClose, "close"},
		{OpcodePing, "ping"},
		{OpcodePong, "pong"},
		{Opcode(0x3), "3"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Opcode(%#x).String() = %q, want %q", byte(tt.op), got, tt.want)
		}
	}
}

func TestOpcodeIsControl(t *testing.T) {
	control := []Opcode{OpcodeClose, OpcodePing, OpcodePong}
	data := []Opcode{OpcodeContinuation, OpcodeText, OpcodeBinary}

	for _, op := range control {
		if !op.IsControl() {
			t.Errorf("Opcode(%v).IsControl() = false, want true", op)
		}
	}
	for _, op := range data {
		if op.IsControl() {
			t.Errorf("Opcode(%v).IsControl() = true, want false", op)
		}
	}
}
