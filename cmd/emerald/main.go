package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/emerald/cmd/emerald/commands"
	ferrors "git.home.luguber.info/inful/emerald/internal/errors"
	"git.home.luguber.info/inful/emerald/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("emerald"),
		kong.Description("Render a documented source model into a link-stable HTML site or a JSON summary."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	global := &commands.Global{Logger: slog.Default()}
	if err := parser.Run(global, cli); err != nil {
		ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
