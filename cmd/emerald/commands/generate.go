package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	GenerateFlags `embed:""`
}

func (g *GenerateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if err := g.apply(cfg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return RunGenerate(ctx, cfg, g.Model)
}
