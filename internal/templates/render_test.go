package templates

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/emerald/internal/errors"
	"git.home.luguber.info/inful/emerald/internal/model"
)

func newDefault(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(Embedded(), nil)
	require.NoError(t, err)
	return r
}

func TestRenderFile(t *testing.T) {
	r := newDefault(t)
	out, err := r.Render(TemplateFile, model.File{RelativeName: "lib/foo.rb", Description: "Does *things*."}, PageContext{Root: "../", Title: "lib/foo.rb"})
	require.NoError(t, err)
	require.Contains(t, out, "lib/foo.rb")
	require.Contains(t, out, "<em>things</em>")
}

func TestRenderType(t *testing.T) {
	r := newDefault(t)
	typ := model.Type{
		QualifiedName: "Foo::Bar",
		Kind:          model.KindClass,
		Superclass:    "Object",
		Includes:      []string{"Comparable"},
		Constants:     []model.Constant{{Name: "LIMIT", Value: "10"}},
		Attributes:    []model.Attribute{{Name: "size", RW: "R"}},
		Methods: []model.Method{
			{Name: "baz", Owner: "Foo::Bar", Visibility: model.Public, Kind: model.InstanceMethod, Signatures: []string{"baz(x)"}, RawBody: "returns `x`"},
			{Name: "new", Owner: "Foo::Bar", Visibility: model.Public, Kind: model.Constructor, FormattedBody: "<pre class=\"ruby\">def initialize; end</pre>"},
		},
	}
	out, err := r.Render(TemplateType, typ, PageContext{Root: "../", Title: "Foo::Bar"})
	require.NoError(t, err)

	require.Contains(t, out, "Foo::Bar")
	require.Contains(t, out, "<code>Object</code>")
	require.Contains(t, out, "<code>Comparable</code>")
	require.Contains(t, out, `id="method-i-baz"`)
	require.Contains(t, out, `id="method-c-new"`)
	require.Contains(t, out, "baz(x)")
	require.Contains(t, out, "<code>x</code>")
	require.Contains(t, out, `<pre class="ruby">def initialize; end</pre>`)
	require.Less(t, strings.Index(out, "method-i-baz"), strings.Index(out, "method-c-new"))
}

func TestRenderTypeWithoutMethodsKeepsSection(t *testing.T) {
	r := newDefault(t)
	out, err := r.Render(TemplateType, model.Type{QualifiedName: "Empty", Kind: model.KindModule}, PageContext{Root: "./"})
	require.NoError(t, err)
	require.Contains(t, out, `id="method-list-section"`)
	require.NotContains(t, out, "method-detail")
	require.NotContains(t, out, "Parent:")
}

func TestRenderEscapesEntityText(t *testing.T) {
	r := newDefault(t)
	out, err := r.Render(TemplateFile, model.File{RelativeName: "<script>.rb"}, PageContext{Root: "./"})
	require.NoError(t, err)
	require.NotContains(t, out, "<script>.rb")
	require.Contains(t, out, "&lt;script&gt;.rb")
}

func TestRenderUnknownTemplate(t *testing.T) {
	r := newDefault(t)
	_, err := r.Render(TemplateID("sidebar"), model.File{RelativeName: "a.rb"}, PageContext{})
	require.Error(t, err)
	require.True(t, ferrors.IsCategory(err, ferrors.CategoryConfig))
}

func TestRenderEntityMismatch(t *testing.T) {
	r := newDefault(t)
	_, err := r.Render(TemplateType, model.File{RelativeName: "a.rb"}, PageContext{})
	require.Error(t, err)
	require.True(t, ferrors.IsCategory(err, ferrors.CategoryInternal))
}

func TestWrapInLayout(t *testing.T) {
	r := newDefault(t)
	nav := &Navigation{
		Files:   []NavEntry{{Label: "lib/foo.rb", Href: "lib/foo_rb.html"}},
		Types:   []NavEntry{{Label: "Foo::Bar", Href: "Foo/Bar.html"}},
		Methods: []NavEntry{{Label: "baz (Foo::Bar)", Href: "Foo/Bar.html#method-i-baz"}},
	}
	out, err := r.WrapInLayout("<p>body</p>", PageContext{Root: "../", Title: "Foo::Bar", Nav: nav})
	require.NoError(t, err)

	require.Contains(t, out, "<title>Foo::Bar</title>")
	require.Contains(t, out, `href="../stylesheets/emerald.css"`)
	require.Contains(t, out, `src="../javascripts/emerald.js"`)
	require.Contains(t, out, `href="../lib/foo_rb.html"`)
	require.Contains(t, out, `href="../Foo/Bar.html"`)
	require.Contains(t, out, `href="../Foo/Bar.html#method-i-baz">baz (Foo::Bar)</a>`)
	require.Contains(t, out, "<p>body</p>")
}

func TestWrapInLayoutNilNavigation(t *testing.T) {
	r := newDefault(t)
	out, err := r.WrapInLayout("", PageContext{Root: "./", Title: "x"})
	require.NoError(t, err)
	require.Contains(t, out, `href="./index.html"`)
}

func TestRenderPage(t *testing.T) {
	r := newDefault(t)
	out, err := r.RenderPage(TemplateFile, model.File{RelativeName: "README"}, PageContext{Root: "./", Title: "README"})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	require.Contains(t, out, `class="file-name">README<`)
}

func TestNewMissingTemplate(t *testing.T) {
	fsys := fstest.MapFS{
		"layout.html.tmpl": {Data: []byte("{{.Body}}")},
		"file.html.tmpl":   {Data: []byte("{{.Entity.RelativeName}}")},
	}
	_, err := New(fsys, nil)
	require.Error(t, err)
	require.True(t, ferrors.IsCategory(err, ferrors.CategoryConfig))
	require.Contains(t, err.Error(), "unknown template")
}

func TestNewInvalidTemplate(t *testing.T) {
	fsys := fstest.MapFS{
		"layout.html.tmpl": {Data: []byte("{{.Body")},
		"file.html.tmpl":   {Data: []byte("x")},
		"type.html.tmpl":   {Data: []byte("x")},
	}
	_, err := New(fsys, nil)
	require.Error(t, err)
	require.True(t, ferrors.IsCategory(err, ferrors.CategoryConfig))
}

func TestOverrideTemplates(t *testing.T) {
	fsys := fstest.MapFS{
		"layout.html.tmpl": {Data: []byte("[{{.Title}}]{{.Body}}")},
		"file.html.tmpl":   {Data: []byte("file:{{.Entity.RelativeName}}@{{.Root}}")},
		"type.html.tmpl":   {Data: []byte("type:{{.Entity.QualifiedName}}")},
	}
	r, err := New(fsys, nil)
	require.NoError(t, err)

	out, err := r.RenderPage(TemplateFile, model.File{RelativeName: "a.rb"}, PageContext{Root: "./", Title: "a.rb"})
	require.NoError(t, err)
	require.Equal(t, "[a.rb]file:a.rb@./", out)
}

func TestOverrideTemplatesHelpers(t *testing.T) {
	fsys := fstest.MapFS{
		"layout.html.tmpl": {Data: []byte("{{.Body}}")},
		"file.html.tmpl":   {Data: []byte(`<a href="{{href .Root (filePath .Entity.RelativeName)}}">{{.Entity.RelativeName}}</a>`)},
		"type.html.tmpl": {Data: []byte(`{{join .Entity.Includes ", "}}|{{typePath .Entity.QualifiedName}}` +
			`{{range .Entity.Methods}}|{{anchor .}}{{end}}`)},
	}
	r, err := New(fsys, nil)
	require.NoError(t, err)

	out, err := r.Render(TemplateFile, model.File{RelativeName: "lib/foo.rb"}, PageContext{Root: "../"})
	require.NoError(t, err)
	require.Equal(t, `<a href="../lib/foo_rb.html">lib/foo.rb</a>`, out)

	out, err = r.Render(TemplateFile, model.File{RelativeName: "lib/a#b.rb"}, PageContext{Root: "../"})
	require.NoError(t, err)
	require.Equal(t, `<a href="../lib/a%23b_rb.html">lib/a#b.rb</a>`, out)

	typ := model.Type{
		QualifiedName: "Foo::Bar",
		Includes:      []string{"Comparable", "Enumerable"},
		Methods:       []model.Method{{Name: "each", Owner: "Foo::Bar", Kind: model.InstanceMethod}},
	}
	out, err = r.Render(TemplateType, typ, PageContext{Root: "../"})
	require.NoError(t, err)
	require.Equal(t, "Comparable, Enumerable|Foo/Bar.html|method-i-each", out)
}

func TestResolve(t *testing.T) {
	fsys, err := Resolve("")
	require.NoError(t, err)
	_, err = New(fsys, nil)
	require.NoError(t, err)

	dir := t.TempDir()
	fsys, err = Resolve(dir)
	require.NoError(t, err)
	require.NotNil(t, fsys)

	_, err = Resolve(dir + "/missing")
	require.Error(t, err)
	require.True(t, ferrors.IsCategory(err, ferrors.CategoryConfig))
}
