package site

import (
	"context"
	"errors"
	"log/slog"
	"time"

	ferrors "git.home.luguber.info/inful/emerald/internal/errors"
	"git.home.luguber.info/inful/emerald/internal/logfields"
	"git.home.luguber.info/inful/emerald/internal/metrics"
)

// Stage is a discrete unit of work in the site build.
type Stage func(ctx context.Context, bs *BuildState) error

// runStages executes stages in order, recording timing and stopping on the first error.
func runStages(ctx context.Context, bs *BuildState, stages []StageDef) error {
	rec := bs.Generator.recorder
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			cerr := ferrors.Canceled(string(st.Name), err)
			bs.Report.recordStage(st.Name, 0, metrics.ResultCanceled, rec)
			bs.Report.Errors = append(bs.Report.Errors, cerr)
			return cerr
		}

		t0 := time.Now()
		err := st.Fn(ctx, bs)
		dur := time.Since(t0)

		if err == nil {
			bs.Report.recordStage(st.Name, dur, metrics.ResultSuccess, rec)
			slog.Debug("Stage complete", logfields.Stage(string(st.Name)), logfields.DurationMS(float64(dur.Microseconds())/1000))
			continue
		}

		err = classifyStageError(st.Name, err)
		result := metrics.ResultFatal
		if ferrors.IsCategory(err, ferrors.CategoryCanceled) {
			result = metrics.ResultCanceled
		}
		bs.Report.recordStage(st.Name, dur, result, rec)
		bs.Report.Errors = append(bs.Report.Errors, err)
		return err
	}
	return nil
}

// classifyStageError tags categorized errors with the stage and turns anything else
// into a categorized one.
func classifyStageError(stage StageName, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		if !ferrors.IsCategory(err, ferrors.CategoryCanceled) {
			return ferrors.Canceled(string(stage), err)
		}
	}
	if ee, ok := ferrors.As(err); ok {
		if _, set := ee.Context["stage"]; !set {
			ee.WithContext("stage", string(stage))
		}
		return ee
	}
	return ferrors.InternalError("stage failed", err).WithContext("stage", string(stage))
}
