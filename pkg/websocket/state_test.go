package websocket

import "testing"

func TestConnStateString(t *testing.T) {
	tests := []struct {
		s    ConnState
		want string
	}{
		{StateAwaitingHandshake, "awaiting-handshake"},
		{StateUpgrading, "upgrading"},
		{StateEstablished, "established"},
		{StateClosed, "closed"},
		{ConnState(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("ConnState(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
