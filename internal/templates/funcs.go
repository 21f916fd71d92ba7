package templates

import (
	"html/template"
	"strings"

	"git.home.luguber.info/inful/emerald/internal/model"
	"git.home.luguber.info/inful/emerald/internal/paths"
)

// funcs is the complete set of helpers available to templates. filePath and
// typePath return escaped link forms for use with href.
func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"href":       func(root, p string) string { return root + p },
		"filePath":   func(name string) string { return paths.Href(paths.ForFile(name)) },
		"typePath":   func(name string) string { return paths.Href(paths.ForType(name)) },
		"anchor":     paths.MethodAnchor,
		"join":       strings.Join,
		"markdown":   r.markdown,
		"methodBody": r.methodBody,
	}
}

func (r *Renderer) markdown(src string) (template.HTML, error) {
	out, err := r.md.ToHTML(src)
	if err != nil {
		return "", err
	}
	// #nosec G203 -- produced by the markdown converter, raw HTML filtered unless enabled.
	return template.HTML(out), nil
}

// methodBody prefers the host's pre-formatted HTML and falls back to converting the
// raw body.
func (r *Renderer) methodBody(m model.Method) (template.HTML, error) {
	if m.FormattedBody != "" {
		// #nosec G203 -- formatted bodies are HTML produced by the host formatter.
		return template.HTML(m.FormattedBody), nil
	}
	return r.markdown(m.RawBody)
}
