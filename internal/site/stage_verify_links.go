package site

import (
	"context"
	"log/slog"

	ferrors "git.home.luguber.info/inful/emerald/internal/errors"
	"git.home.luguber.info/inful/emerald/internal/linkverify"
	"git.home.luguber.info/inful/emerald/internal/logfields"
)

// stageVerifyLinks checks every relative link in the pages this run wrote.
func stageVerifyLinks(ctx context.Context, bs *BuildState) error {
	g := bs.Generator
	report, err := linkverify.NewVerifier(g.outputDir).Verify(ctx, bs.Report.Written)
	if err != nil {
		if ctx.Err() != nil {
			return ferrors.Canceled(string(StageVerifyLinks), err)
		}
		return ferrors.InternalError("link verification failed", err)
	}

	bs.Report.BrokenLinks = len(report.Broken)
	g.recorder.SetBrokenLinks(len(report.Broken))
	slog.Info("Verified links",
		slog.Int("pages", report.PagesChecked),
		slog.Int("links", report.LinksChecked),
		slog.Int("broken", len(report.Broken)))

	if len(report.Broken) == 0 {
		return nil
	}
	for _, b := range report.Broken {
		slog.Warn("Broken link", logfields.Path(b.Page), slog.String("url", b.URL), slog.String("reason", b.Reason))
	}
	first := report.Broken[0]
	return ferrors.New(ferrors.CategoryRender, ferrors.SeverityFatal, "broken links in generated site").
		WithContext("count", len(report.Broken)).
		WithContext("first", first.String())
}
