package site

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"git.home.luguber.info/inful/emerald/internal/logfields"
	"git.home.luguber.info/inful/emerald/internal/paths"
	"git.home.luguber.info/inful/emerald/internal/templates"
)

const placeholderIndex = `<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8"><title>%[1]s</title></head><body><p>This is the %[1]s.</p></body></html>
`

// stageIndex writes index.html. The designated main file is rendered again with the
// site root as its relative root; without one a static placeholder is written.
func stageIndex(_ context.Context, bs *BuildState) error {
	g := bs.Generator
	if bs.MainPage == nil {
		page := fmt.Sprintf(placeholderIndex, html.EscapeString(g.config.Site.Title))
		return g.writeOutput(bs, IndexPage, "index", []byte(page))
	}

	f := *bs.MainPage
	pc := templates.PageContext{
		Root:  paths.RootPrefix(0),
		Title: f.RelativeName,
		Nav:   bs.Nav,
	}
	if err := g.writePage(bs, IndexPage, "index", templates.TemplateFile, f, pc); err != nil {
		return err
	}
	slog.Debug("Main page copied to index", logfields.Entity(f.RelativeName))
	return nil
}
