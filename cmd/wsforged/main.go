// Command wsforged is a minimal reference host for the websocket
// engine: it accepts TCP connections, drives pkg/websocket's codec
// over each one, and echoes data messages back to the sender. It is
// deliberately thin — no TLS, no benchmarking harness, no production
// hardening — just enough of a host to exercise the codec end to end.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/halvorsen/wsforge/internal/wsconn"
)

func main() {
	bi, _ := debug.ReadBuildInfo()

	cmd := &cli.Command{
		Name:    "wsforged",
		Usage:   "reference WebSocket server built on pkg/websocket",
		Version: bi.Main.Version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			initLog(cmd.Bool("dev"))
			return serve(ctx, cmd.String("addr"))
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// initLog sets up both of wsforged's logging streams: slog for the
// engine's own protocol diagnostics, zerolog for per-connection access
// logging.
func initLog(devMode bool) {
	var handler slog.Handler
	if devMode {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(handler))

	if devMode {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// serve accepts connections on addr until ctx is canceled.
func serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %q: %w", addr, err)
	}
	defer ln.Close()

	log.Info().Str("addr", addr).Msg("wsforged listening")

	registry := &wsconn.Registry{}

	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("accept failed: %w", err)
		}

		entry := registry.Register(conn.RemoteAddr().String())
		go func() {
			defer registry.Unregister(entry.ID)
			handleConn(ctx, conn, entry)
		}()
	}
}
