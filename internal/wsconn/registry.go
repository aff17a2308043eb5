// Package wsconn is the demo host's connection registry: an
// in-process directory of currently-open WebSocket connections, keyed
// by a stable UUID and labeled with a short, log-friendly ID.
//
// This is a reference-host concern, not part of the protocol engine:
// connection registries and pub-sub fan-out live in the host
// application, not in the wire codec itself.
package wsconn

import (
	"sync"

	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v4"
)

// Entry describes one registered connection.
type Entry struct {
	ID         uuid.UUID
	Label      string // Short ID for log correlation, e.g. "KwSysDpxcBU9FNhGkn2dCf".
	RemoteAddr string
}

// Registry is a concurrency-safe map of open connections. The zero
// value is ready to use.
type Registry struct {
	conns sync.Map // uuid.UUID -> Entry
}

// Register adds a new connection and returns its Entry. The caller
// supplies the remote address for logging; Registry generates the
// identity (UUID) and the loggable label (short UUID).
//
// Concurrency-safe via [sync.Map], since connections are registered
// and unregistered from different goroutines as they're accepted and
// closed.
func (r *Registry) Register(remoteAddr string) Entry {
	e := Entry{
		ID:         uuid.New(),
		Label:      shortuuid.New(),
		RemoteAddr: remoteAddr,
	}
	r.conns.Store(e.ID, e)
	return e
}

// Unregister removes a connection from the registry.
func (r *Registry) Unregister(id uuid.UUID) {
	r.conns.Delete(id)
}

// Len returns the number of currently-registered connections.
func (r *Registry) Len() int {
	n := 0
	r.conns.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
