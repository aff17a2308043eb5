// Package logger carries a [slog.Logger] through a [context.Context],
// so a connection's logger can be threaded from the demo host down
// into the engine without a global.
package logger

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"
)

type ctxKey struct{}

var ctxLoggerKey = ctxKey{}

// InContext returns a copy of ctx carrying l, retrievable with [FromContext].
func InContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey, l)
}

// FromContext returns the logger carried by ctx, or [slog.Default] if
// none was attached with [InContext].
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// FatalError logs an error at ERROR level and exits the process. It is
// meant for unrecoverable startup failures in cmd/wsforged, never for
// per-connection errors (those are returned to the caller, per the
// engine's error-handling design).
func FatalError(msg string, err error, attrs ...slog.Attr) {
	var pcs [1]uintptr
	runtime.Callers(2, pcs[:]) // Skip runtime.Callers and FatalError itself, to record FatalError's caller.

	r := slog.NewRecord(time.Now(), slog.LevelError, msg, pcs[0])
	if err != nil {
		r.AddAttrs(slog.Any("error", err))
	}
	r.AddAttrs(attrs...)

	_ = slog.Default().Handler().Handle(context.Background(), r)
	os.Exit(1)
}
