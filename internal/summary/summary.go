// Package summary serializes the whole host model into a single all.json document.
package summary

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/emerald/internal/errors"
	"git.home.luguber.info/inful/emerald/internal/logfields"
	"git.home.luguber.info/inful/emerald/internal/metrics"
	"git.home.luguber.info/inful/emerald/internal/model"
	"git.home.luguber.info/inful/emerald/internal/output"
	"git.home.luguber.info/inful/emerald/internal/paths"
)

// FileName is the name of the summary document inside the output directory.
const FileName = "all.json"

// Document is the serialized form of all.json. Field order is fixed by the struct
// declarations and every slice is non-nil, so no key is ever omitted.
type Document struct {
	Files   []FileRecord   `json:"files"`
	Types   []TypeRecord   `json:"types"`
	Methods []MethodRecord `json:"methods"`
}

type FileRecord struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

type TypeRecord struct {
	Name        string            `json:"name"`
	Kind        string            `json:"kind"`
	Superclass  string            `json:"superclass"`
	Path        string            `json:"path"`
	Description string            `json:"description"`
	Includes    []string          `json:"includes"`
	Constants   []ConstantRecord  `json:"constants"`
	Attributes  []AttributeRecord `json:"attributes"`
	Methods     []string          `json:"methods"`
}

type ConstantRecord struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

type AttributeRecord struct {
	Name        string `json:"name"`
	RW          string `json:"rw"`
	Description string `json:"description"`
}

// MethodRecord describes one method. Label is "name (Owner)" and Path the page
// fragment the HTML generator would link to.
type MethodRecord struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Owner       string   `json:"owner"`
	Visibility  string   `json:"visibility"`
	Kind        string   `json:"kind"`
	Path        string   `json:"path"`
	Signatures  []string `json:"signatures"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
}

// Build maps the host model to a Document. Files keep host order, types are sorted by
// qualified name and methods by owner then name.
func Build(p model.Provider) *Document {
	doc := &Document{
		Files:   []FileRecord{},
		Types:   []TypeRecord{},
		Methods: []MethodRecord{},
	}

	for _, f := range p.AllFiles() {
		doc.Files = append(doc.Files, FileRecord{
			Name:        f.RelativeName,
			Path:        paths.ForFile(f.RelativeName),
			Description: f.Description,
		})
	}

	types := model.SortedTypes(p.AllTypes())
	for _, t := range types {
		doc.Types = append(doc.Types, typeRecord(t))
	}
	for _, m := range model.SortedMethods(types) {
		doc.Methods = append(doc.Methods, methodRecord(m))
	}
	return doc
}

func typeRecord(t model.Type) TypeRecord {
	rec := TypeRecord{
		Name:        t.QualifiedName,
		Kind:        string(t.Kind),
		Superclass:  t.Superclass,
		Path:        paths.ForType(t.QualifiedName),
		Description: t.Description,
		Includes:    nonNil(t.Includes),
		Constants:   make([]ConstantRecord, 0, len(t.Constants)),
		Attributes:  make([]AttributeRecord, 0, len(t.Attributes)),
		Methods:     make([]string, 0, len(t.Methods)),
	}
	for _, c := range t.Constants {
		rec.Constants = append(rec.Constants, ConstantRecord(c))
	}
	for _, a := range t.Attributes {
		rec.Attributes = append(rec.Attributes, AttributeRecord(a))
	}
	for _, m := range t.Methods {
		rec.Methods = append(rec.Methods, m.Name)
	}
	return rec
}

func methodRecord(m model.Method) MethodRecord {
	body := m.FormattedBody
	if body == "" {
		body = m.RawBody
	}
	return MethodRecord{
		Name:        m.Name,
		Label:       m.Name + " (" + m.Owner + ")",
		Owner:       m.Owner,
		Visibility:  string(m.Visibility),
		Kind:        string(m.Kind),
		Path:        paths.ForType(m.Owner) + "#" + paths.MethodAnchor(m),
		Signatures:  nonNil(m.Signatures),
		Description: m.Description,
		Body:        body,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Marshal encodes doc with two-space indentation and a trailing newline.
func Marshal(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, ferrors.InternalError("encode summary", err)
	}
	return append(data, '\n'), nil
}

// Exporter writes all.json into an output directory.
type Exporter struct {
	outDir   string
	recorder metrics.Recorder
}

// NewExporter returns an exporter writing below outDir.
func NewExporter(outDir string) *Exporter {
	return &Exporter{outDir: outDir, recorder: metrics.NoopRecorder{}}
}

// SetRecorder injects a metrics recorder.
func (e *Exporter) SetRecorder(r metrics.Recorder) *Exporter {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	e.recorder = r
	return e
}

// Export validates the model and writes the summary document, creating the output
// directory if needed. It returns the path written.
func (e *Exporter) Export(ctx context.Context, p model.Provider) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", ferrors.Canceled("summary", err)
	}
	if err := model.Validate(p); err != nil {
		return "", err
	}
	if err := output.EnsureDir(e.outDir); err != nil {
		return "", err
	}

	doc := Build(p)
	data, err := Marshal(doc)
	if err != nil {
		return "", err
	}
	full, err := output.WriteFile(e.outDir, FileName, data)
	if err != nil {
		return "", err
	}
	e.recorder.IncPageWritten("summary")

	slog.Info("Wrote summary",
		logfields.Path(filepath.ToSlash(full)),
		slog.Int("files", len(doc.Files)),
		slog.Int("types", len(doc.Types)),
		slog.Int("methods", len(doc.Methods)))
	return full, nil
}
