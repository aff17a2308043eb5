package main

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/toml"
	"github.com/urfave/cli/v3"

	"github.com/tzrikka/xdg"

	"github.com/halvorsen/wsforge/internal/logger"
)

const (
	configDirName  = "wsforged"
	configFileName = "config.toml"

	// DefaultAddr is the default TCP address the demo server listens on.
	DefaultAddr = "127.0.0.1:8080"
)

// flags defines wsforged's CLI flags. Each flag can also be set via an
// environment variable or the app's TOML configuration file.
func flags() []cli.Flag {
	path := configFile()

	return []cli.Flag{
		&cli.StringFlag{
			Name:  "addr",
			Usage: "TCP address to listen on for WebSocket connections",
			Value: DefaultAddr,
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("WSFORGED_ADDR"),
				toml.TOML("server.addr", path),
			),
		},
		&cli.BoolFlag{
			Name:  "dev",
			Usage: "human-readable console logging instead of JSON, and debug-level verbosity",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("WSFORGED_DEV"),
				toml.TOML("server.dev", path),
			),
		},
	}
}

// configFile returns the path to wsforged's configuration file,
// creating an empty one if it doesn't already exist.
func configFile() altsrc.StringSourcer {
	path, err := xdg.CreateFile(xdg.ConfigHome, configDirName, configFileName)
	if err != nil {
		logger.FatalError("failed to create config file", err)
	}
	return altsrc.StringSourcer(path)
}
