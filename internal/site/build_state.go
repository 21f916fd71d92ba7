package site

import (
	"git.home.luguber.info/inful/emerald/internal/model"
	"git.home.luguber.info/inful/emerald/internal/templates"
)

// BuildState carries the planned pages and the report across stages.
type BuildState struct {
	Generator *Generator
	Provider  model.Provider
	Report    *BuildReport

	// Set by the validate stage.
	Files    []model.File // host order
	Types    []model.Type // sorted by qualified name
	MainPage *model.File
	Nav      *templates.Navigation
}

func newBuildState(g *Generator, p model.Provider, report *BuildReport) *BuildState {
	return &BuildState{Generator: g, Provider: p, Report: report}
}
