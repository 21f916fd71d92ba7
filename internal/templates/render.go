// Package templates renders documentation pages from a fixed set of HTML templates.
//
// Each page is produced in two steps: the page template for the entity kind ("file"
// or "type") renders the body, then the shared "layout" template wraps it with
// navigation, stylesheet links and the title. Templates only substitute values and
// iterate over the entity's collections; the helper functions they may call are
// listed in funcs.go.
package templates

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"

	ferrors "git.home.luguber.info/inful/emerald/internal/errors"
	"git.home.luguber.info/inful/emerald/internal/markdown"
	"git.home.luguber.info/inful/emerald/internal/model"
)

// TemplateID names one of the fixed templates.
type TemplateID string

const (
	TemplateLayout TemplateID = "layout"
	TemplateFile   TemplateID = "file"
	TemplateType   TemplateID = "type"
)

const templateSuffix = ".html.tmpl"

//go:embed data/*.html.tmpl
var embedded embed.FS

// Embedded returns the bundled template set.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(fmt.Sprintf("embedded templates: %v", err))
	}
	return sub
}

// Resolve returns the bundled templates when dir is empty, otherwise the directory
// after checking it is readable.
func Resolve(dir string) (fs.FS, error) {
	if dir == "" {
		return Embedded(), nil
	}
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, ferrors.Wrap(err, ferrors.CategoryConfig, ferrors.SeverityFatal, "template directory unreadable").
			WithContext("path", dir)
	}
	if !fi.IsDir() {
		return nil, ferrors.ConfigInvalid("templates.directory", dir+" is not a directory")
	}
	return os.DirFS(dir), nil
}

// Renderer executes the page and layout templates.
type Renderer struct {
	layout *template.Template
	pages  map[TemplateID]*template.Template
	md     *markdown.Converter
}

// New parses the layout and every page template from fsys. A missing or invalid
// template is a configuration error.
func New(fsys fs.FS, conv *markdown.Converter) (*Renderer, error) {
	if conv == nil {
		conv = markdown.NewConverter()
	}
	r := &Renderer{pages: make(map[TemplateID]*template.Template), md: conv}

	layout, err := r.parse(fsys, TemplateLayout)
	if err != nil {
		return nil, err
	}
	r.layout = layout

	for _, id := range []TemplateID{TemplateFile, TemplateType} {
		tpl, err := r.parse(fsys, id)
		if err != nil {
			return nil, err
		}
		r.pages[id] = tpl
	}
	return r, nil
}

func (r *Renderer) parse(fsys fs.FS, id TemplateID) (*template.Template, error) {
	name := string(id) + templateSuffix
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ferrors.UnknownTemplate(string(id)).WithContext("file", name)
		}
		return nil, ferrors.Wrap(err, ferrors.CategoryConfig, ferrors.SeverityFatal, "read template").
			WithContext("template", string(id))
	}
	tpl, err := template.New(name).Funcs(r.funcs()).Option("missingkey=error").Parse(string(data))
	if err != nil {
		return nil, ferrors.Wrap(err, ferrors.CategoryConfig, ferrors.SeverityFatal, "parse template").
			WithContext("template", string(id))
	}
	return tpl, nil
}

// Render executes the page template id for entity. The file template takes a
// model.File and the type template a model.Type.
func (r *Renderer) Render(id TemplateID, entity any, pc PageContext) (string, error) {
	tpl, ok := r.pages[id]
	if !ok {
		return "", ferrors.UnknownTemplate(string(id))
	}
	name, err := entityName(id, entity)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, pageData{Root: pc.Root, Title: pc.Title, Entity: entity}); err != nil {
		return "", ferrors.RenderFailed(name, err).WithContext("template", string(id))
	}
	return buf.String(), nil
}

// WrapInLayout places an already rendered body inside the site layout.
func (r *Renderer) WrapInLayout(body string, pc PageContext) (string, error) {
	nav := pc.Nav
	if nav == nil {
		nav = &Navigation{}
	}
	data := struct {
		Root  string
		Title string
		Nav   *Navigation
		Body  template.HTML
	}{
		Root:  pc.Root,
		Title: pc.Title,
		Nav:   nav,
		// #nosec G203 -- body is the output of our own html/template execution.
		Body: template.HTML(body),
	}

	var buf bytes.Buffer
	if err := r.layout.Execute(&buf, data); err != nil {
		return "", ferrors.RenderFailed(pc.Title, err).WithContext("template", string(TemplateLayout))
	}
	return buf.String(), nil
}

// RenderPage renders the page template and wraps the result in the layout.
func (r *Renderer) RenderPage(id TemplateID, entity any, pc PageContext) (string, error) {
	body, err := r.Render(id, entity, pc)
	if err != nil {
		return "", err
	}
	return r.WrapInLayout(body, pc)
}

func entityName(id TemplateID, entity any) (string, error) {
	switch id {
	case TemplateFile:
		if f, ok := entity.(model.File); ok {
			return f.RelativeName, nil
		}
	case TemplateType:
		if t, ok := entity.(model.Type); ok {
			return t.QualifiedName, nil
		}
	}
	return "", ferrors.InternalError(fmt.Sprintf("template %s cannot render %T", id, entity), nil)
}
