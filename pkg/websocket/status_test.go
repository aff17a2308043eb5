package websocket

import (
	"strings"
	"testing"
)

func TestCloseFramePayloadRoundTrip(t *testing.T) {
	payload := BuildCloseFramePayload(StatusGoingAway, "server restarting")

	status, reason := ParseCloseFramePayload(payload)
	if status != StatusGoingAway {
		t.Fatalf("status = %v, want StatusGoingAway", status)
	}
	if reason != "server restarting" {
		t.Fatalf("reason = %q, want %q", reason, "server restarting")
	}
}

func TestBuildCloseFramePayloadTruncatesReason(t *testing.T) {
	long := strings.Repeat("x", 200)
	payload := BuildCloseFramePayload(StatusNormalClosure, long)

	if len(payload) != maxLen7Bit {
		t.Fatalf("len(payload) = %d, want %d (125-byte control frame cap)", len(payload), maxLen7Bit)
	}

	_, reason := ParseCloseFramePayload(payload)
	if len(reason) != maxCloseReason {
		t.Fatalf("len(reason) = %d, want %d", len(reason), maxCloseReason)
	}
}

func TestParseCloseFramePayloadEmpty(t *testing.T) {
	status, reason := ParseCloseFramePayload(nil)
	if status != StatusNormalClosure || reason != "" {
		t.Fatalf("got (%v, %q), want (StatusNormalClosure, \"\")", status, reason)
	}
}

func TestParseCloseFramePayloadSingleByte(t *testing.T) {
	status, reason := ParseCloseFramePayload([]byte{0x01})
	if status != StatusProtocolError || reason != "" {
		t.Fatalf("got (%v, %q), want (StatusProtocolError, \"\")", status, reason)
	}
}

func TestStatusCodeString(t *testing.T) {
	if got := StatusNormalClosure.String(); got != "normal closure" {
		t.Fatalf("String() = %q", got)
	}
	if got := StatusCode(4500).String(); got != "4500" {
		t.Fatalf("String() on an unregistered code = %q, want \"4500\"", got)
	}
}
