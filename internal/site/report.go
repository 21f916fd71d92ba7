package site

import (
	"fmt"
	"time"

	ferrors "git.home.luguber.info/inful/emerald/internal/errors"
	"git.home.luguber.info/inful/emerald/internal/metrics"
)

// BuildOutcome is the typed enumeration of final build result states.
type BuildOutcome string

const (
	OutcomeSuccess  BuildOutcome = "success"
	OutcomeFailed   BuildOutcome = "failed"
	OutcomeCanceled BuildOutcome = "canceled"
)

// BuildReport captures what a generation run did. It is returned to the caller and
// logged; it is never written into the output directory.
type BuildReport struct {
	Start time.Time
	End   time.Time

	Files int // files supplied by the host
	Types int // types supplied by the host

	PagesWritten int
	AssetsCopied int
	// BrokenLinks is only populated when link verification ran.
	BrokenLinks int
	// Written lists the pages written, relative to the output directory, in write order.
	Written []string

	Stages         []StageName // stages that ran, in order
	StageDurations map[StageName]time.Duration
	StageResults   map[StageName]metrics.ResultLabel
	Errors         []error

	Outcome BuildOutcome
}

func newBuildReport(files, types int) *BuildReport {
	return &BuildReport{
		Start:          time.Now(),
		Files:          files,
		Types:          types,
		StageDurations: make(map[StageName]time.Duration),
		StageResults:   make(map[StageName]metrics.ResultLabel),
	}
}

func (r *BuildReport) recordStage(name StageName, d time.Duration, result metrics.ResultLabel, rec metrics.Recorder) {
	r.Stages = append(r.Stages, name)
	r.StageDurations[name] = d
	r.StageResults[name] = result
	rec.ObserveStageDuration(string(name), d)
	rec.IncStageResult(string(name), result)
}

func (r *BuildReport) finish() {
	r.End = time.Now()
	r.deriveOutcome()
}

// deriveOutcome sets the Outcome field based on recorded errors.
func (r *BuildReport) deriveOutcome() {
	switch {
	case len(r.Errors) == 0:
		r.Outcome = OutcomeSuccess
	case ferrors.IsCategory(r.Errors[len(r.Errors)-1], ferrors.CategoryCanceled):
		r.Outcome = OutcomeCanceled
	default:
		r.Outcome = OutcomeFailed
	}
}

// Duration is the wall time of the run.
func (r *BuildReport) Duration() time.Duration {
	if r.End.IsZero() {
		return 0
	}
	return r.End.Sub(r.Start)
}

// Summary returns a human-readable single-line summary.
func (r *BuildReport) Summary() string {
	return fmt.Sprintf("files=%d types=%d pages=%d assets=%d broken_links=%d stages=%d duration=%s outcome=%s",
		r.Files, r.Types, r.PagesWritten, r.AssetsCopied, r.BrokenLinks, len(r.Stages),
		r.Duration().Truncate(time.Millisecond), r.Outcome)
}
