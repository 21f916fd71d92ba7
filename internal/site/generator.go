package site

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/emerald/internal/config"
	"git.home.luguber.info/inful/emerald/internal/logfields"
	"git.home.luguber.info/inful/emerald/internal/metrics"
	"git.home.luguber.info/inful/emerald/internal/model"
	"git.home.luguber.info/inful/emerald/internal/templates"
)

// Generator writes the HTML site for a host model.
type Generator struct {
	config    *config.Config
	outputDir string
	renderer  *templates.Renderer
	assets    fs.FS
	recorder  metrics.Recorder
}

// NewGenerator creates a site generator. assetFS is copied into the output root on
// every run; see assets.Resolve.
func NewGenerator(cfg *config.Config, renderer *templates.Renderer, assetFS fs.FS) *Generator {
	return &Generator{
		config:    cfg,
		outputDir: filepath.Clean(cfg.Output.Directory),
		renderer:  renderer,
		assets:    assetFS,
		recorder:  metrics.NoopRecorder{},
	}
}

// SetRecorder injects a metrics recorder (optional). Returns the generator for chaining.
func (g *Generator) SetRecorder(r metrics.Recorder) *Generator {
	if r == nil {
		g.recorder = metrics.NoopRecorder{}
		return g
	}
	g.recorder = r
	return g
}

// OutputDir is the directory pages are written to.
func (g *Generator) OutputDir() string { return g.outputDir }

func (g *Generator) stages() []StageDef {
	defs := []StageDef{
		{Name: StageValidate, Fn: stageValidate},
		{Name: StagePrepareOutput, Fn: stagePrepareOutput},
		{Name: StageCopyAssets, Fn: stageCopyAssets},
		{Name: StageRenderFiles, Fn: stageRenderFiles},
		{Name: StageRenderTypes, Fn: stageRenderTypes},
		{Name: StageIndex, Fn: stageIndex},
	}
	if g.config.VerifyLinks {
		defs = append(defs, StageDef{Name: StageVerifyLinks, Fn: stageVerifyLinks})
	}
	return defs
}

// Generate runs every stage against the model. The report is returned even when the
// run fails.
func (g *Generator) Generate(ctx context.Context, p model.Provider) (*BuildReport, error) {
	report := newBuildReport(len(p.AllFiles()), len(p.AllTypes()))
	slog.Info("Starting site generation",
		logfields.Output(g.outputDir),
		slog.Int("files", report.Files),
		slog.Int("types", report.Types))

	bs := newBuildState(g, p, report)
	err := runStages(ctx, bs, g.stages())

	report.finish()
	g.recorder.ObserveBuildDuration(report.Duration())
	g.recorder.IncBuildOutcome(buildOutcomeLabel(report.Outcome))

	if err != nil {
		slog.Error("Site generation failed", logfields.Error(err), slog.String("summary", report.Summary()))
		return report, err
	}
	slog.Info("Site generation complete", slog.String("summary", report.Summary()))
	return report, nil
}

func buildOutcomeLabel(o BuildOutcome) metrics.BuildOutcomeLabel {
	switch o {
	case OutcomeSuccess:
		return metrics.BuildOutcomeSuccess
	case OutcomeCanceled:
		return metrics.BuildOutcomeCanceled
	default:
		return metrics.BuildOutcomeFailed
	}
}
