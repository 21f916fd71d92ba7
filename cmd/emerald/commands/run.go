package commands

import (
	"context"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/emerald/internal/assets"
	"git.home.luguber.info/inful/emerald/internal/config"
	ferrors "git.home.luguber.info/inful/emerald/internal/errors"
	"git.home.luguber.info/inful/emerald/internal/logfields"
	"git.home.luguber.info/inful/emerald/internal/markdown"
	"git.home.luguber.info/inful/emerald/internal/metrics"
	"git.home.luguber.info/inful/emerald/internal/model"
	"git.home.luguber.info/inful/emerald/internal/site"
	"git.home.luguber.info/inful/emerald/internal/summary"
	"git.home.luguber.info/inful/emerald/internal/templates"
)

// RunGenerate loads the host model and runs the configured generator once. When a
// metrics textfile is configured it is written even if generation fails.
func RunGenerate(ctx context.Context, cfg *config.Config, modelPath string) error {
	provider, err := model.Load(modelPath)
	if err != nil {
		return err
	}

	var rec metrics.Recorder = metrics.NoopRecorder{}
	var prom *metrics.PrometheusRecorder
	if cfg.Metrics.Textfile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		rec = prom
	}

	runErr := generate(ctx, cfg, provider, rec)

	if prom != nil {
		if err := prom.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			slog.Warn("Failed to write metrics textfile", logfields.Path(cfg.Metrics.Textfile), logfields.Error(err))
		}
	}
	return runErr
}

func generate(ctx context.Context, cfg *config.Config, provider model.Provider, rec metrics.Recorder) error {
	slog.Info("Generating documentation",
		logfields.Generator(string(cfg.Generator)),
		logfields.Output(cfg.Output.Directory))

	if cfg.Generator == config.GeneratorJSON {
		start := time.Now()
		_, err := summary.NewExporter(cfg.Output.Directory).SetRecorder(rec).Export(ctx, provider)
		rec.ObserveBuildDuration(time.Since(start))
		switch {
		case ferrors.IsCategory(err, ferrors.CategoryCanceled):
			rec.IncBuildOutcome(metrics.BuildOutcomeCanceled)
			return err
		case err != nil:
			rec.IncBuildOutcome(metrics.BuildOutcomeFailed)
			return err
		}
		rec.IncBuildOutcome(metrics.BuildOutcomeSuccess)
		return nil
	}

	gen, err := newSiteGenerator(cfg)
	if err != nil {
		return err
	}
	_, err = gen.SetRecorder(rec).Generate(ctx, provider)
	return err
}

// newSiteGenerator resolves template and asset overrides. Both are checked before
// anything is written.
func newSiteGenerator(cfg *config.Config) (*site.Generator, error) {
	var opts []markdown.Option
	if cfg.Site.AllowRawHTML {
		opts = append(opts, markdown.AllowRawHTML())
	}

	tfs, err := templates.Resolve(cfg.Templates.Directory)
	if err != nil {
		return nil, err
	}
	renderer, err := templates.New(tfs, markdown.NewConverter(opts...))
	if err != nil {
		return nil, err
	}
	afs, err := assets.Resolve(cfg.Assets.Directory)
	if err != nil {
		return nil, err
	}
	return site.NewGenerator(cfg, renderer, afs), nil
}
