package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testRecorder struct {
	stageDurations map[string]int
	stageResults   map[string]map[ResultLabel]int
	buildDurations int
	buildOutcomes  map[BuildOutcomeLabel]int
	pages          map[string]int
	assets         int
	brokenLinks    int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{
		stageDurations: map[string]int{},
		stageResults:   map[string]map[ResultLabel]int{},
		buildOutcomes:  map[BuildOutcomeLabel]int{},
		pages:          map[string]int{},
	}
}

func (t *testRecorder) ObserveStageDuration(stage string, _ time.Duration) {
	t.stageDurations[stage]++
}
func (t *testRecorder) ObserveBuildDuration(_ time.Duration) { t.buildDurations++ }
func (t *testRecorder) IncStageResult(stage string, result ResultLabel) {
	m, ok := t.stageResults[stage]
	if !ok {
		m = map[ResultLabel]int{}
		t.stageResults[stage] = m
	}
	m[result]++
}
func (t *testRecorder) IncBuildOutcome(outcome BuildOutcomeLabel) { t.buildOutcomes[outcome]++ }
func (t *testRecorder) IncPageWritten(kind string)                { t.pages[kind]++ }
func (t *testRecorder) AddAssetsCopied(n int)                     { t.assets += n }
func (t *testRecorder) SetBrokenLinks(n int)                      { t.brokenLinks = n }

func TestRecorderInterfaceSatisfied(t *testing.T) {
	var recs []Recorder
	recs = append(recs, NoopRecorder{}, newTestRecorder(), NewPrometheusRecorder(nil))
	for _, r := range recs {
		r.ObserveStageDuration("copy_assets", time.Millisecond)
		r.IncStageResult("copy_assets", ResultSuccess)
		r.IncPageWritten("file")
		r.AddAssetsCopied(2)
	}
	tr, ok := recs[1].(*testRecorder)
	require.True(t, ok)
	require.Equal(t, 1, tr.stageDurations["copy_assets"])
	require.Equal(t, 1, tr.stageResults["copy_assets"][ResultSuccess])
	require.Equal(t, 1, tr.pages["file"])
	require.Equal(t, 2, tr.assets)
}
