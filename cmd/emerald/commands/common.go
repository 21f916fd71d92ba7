// Package commands implements the emerald command line.
package commands

import (
	"errors"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/emerald/internal/config"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (default: emerald.yaml when present)" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" help:"Generate the documentation for a host model"`
	Watch    WatchCmd    `cmd:"" help:"Generate, then regenerate whenever the model or overrides change"`
	Init     InitCmd     `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// configPath is the file init writes to and loadConfig reads from.
func (c *CLI) configPath() string {
	if c.Config != "" {
		return c.Config
	}
	return config.DefaultFileName
}

// loadConfig loads the configuration named by --config. Without the flag the
// default file is used when present and built-in defaults otherwise.
func (c *CLI) loadConfig() (*config.Config, error) {
	if c.Config != "" {
		return config.Load(c.Config)
	}
	if _, err := os.Stat(config.DefaultFileName); errors.Is(err, os.ErrNotExist) {
		slog.Debug("No configuration file, using defaults")
		return config.Default(), nil
	}
	return config.Load(config.DefaultFileName)
}
