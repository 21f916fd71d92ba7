package site

import (
	"context"
	"log/slog"

	ferrors "git.home.luguber.info/inful/emerald/internal/errors"
	"git.home.luguber.info/inful/emerald/internal/logfields"
	"git.home.luguber.info/inful/emerald/internal/output"
	"git.home.luguber.info/inful/emerald/internal/paths"
	"git.home.luguber.info/inful/emerald/internal/templates"
)

func stageRenderFiles(ctx context.Context, bs *BuildState) error {
	for _, f := range bs.Files {
		if err := ctx.Err(); err != nil {
			return ferrors.Canceled(string(StageRenderFiles), err)
		}
		pc := templates.PageContext{
			Root:  paths.FileRoot(f.RelativeName),
			Title: f.RelativeName,
			Nav:   bs.Nav,
		}
		if err := bs.Generator.writePage(bs, paths.ForFile(f.RelativeName), "file", templates.TemplateFile, f, pc); err != nil {
			return err
		}
	}
	return nil
}

func stageRenderTypes(ctx context.Context, bs *BuildState) error {
	for _, t := range bs.Types {
		if err := ctx.Err(); err != nil {
			return ferrors.Canceled(string(StageRenderTypes), err)
		}
		pc := templates.PageContext{
			Root:  paths.TypeRoot(t.QualifiedName),
			Title: t.QualifiedName,
			Nav:   bs.Nav,
		}
		if err := bs.Generator.writePage(bs, paths.ForType(t.QualifiedName), "type", templates.TemplateType, t, pc); err != nil {
			return err
		}
	}
	return nil
}

// writePage renders entity with the page template and the layout and writes it to
// rel, a slash path below the output directory.
func (g *Generator) writePage(bs *BuildState, rel, kind string, id templates.TemplateID, entity any, pc templates.PageContext) error {
	html, err := g.renderer.RenderPage(id, entity, pc)
	if err != nil {
		return err
	}
	if err := g.writeOutput(bs, rel, kind, []byte(html)); err != nil {
		return err
	}
	slog.Debug("Wrote page", logfields.Path(rel), logfields.Template(string(id)), logfields.Root(pc.Root))
	return nil
}

func (g *Generator) writeOutput(bs *BuildState, rel, kind string, content []byte) error {
	if _, err := output.WriteFile(g.outputDir, rel, content); err != nil {
		return err
	}
	bs.Report.PagesWritten++
	bs.Report.Written = append(bs.Report.Written, rel)
	g.recorder.IncPageWritten(kind)
	return nil
}
