package site

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/emerald/internal/assets"
	"git.home.luguber.info/inful/emerald/internal/logfields"
	"git.home.luguber.info/inful/emerald/internal/output"
)

func stagePrepareOutput(_ context.Context, bs *BuildState) error {
	return output.EnsureDir(bs.Generator.outputDir)
}

func stageCopyAssets(_ context.Context, bs *BuildState) error {
	g := bs.Generator
	n, err := assets.Copy(g.assets, g.outputDir)
	bs.Report.AssetsCopied += n
	g.recorder.AddAssetsCopied(n)
	if err != nil {
		return err
	}
	slog.Debug("Copied assets", logfields.Count(n), logfields.Output(g.outputDir))
	return nil
}
