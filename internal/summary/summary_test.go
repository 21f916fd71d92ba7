package summary

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/emerald/internal/errors"
	"git.home.luguber.info/inful/emerald/internal/model"
)

func fixture() *model.Static {
	return &model.Static{
		Files: []model.File{
			{RelativeName: "lib/foo.rb", Description: "Foo library."},
			{RelativeName: "README.md"},
		},
		Types: []model.Type{
			{
				QualifiedName: "Foo::Bar",
				Kind:          model.KindClass,
				Superclass:    "Object",
				Constants:     []model.Constant{{Name: "LIMIT", Value: "10"}},
				Methods: []model.Method{
					{Name: "zap", Owner: "Foo::Bar", Visibility: model.Private, Kind: model.InstanceMethod},
					{Name: "baz", Owner: "Foo::Bar", Visibility: model.Public, Kind: model.InstanceMethod, Signatures: []string{"baz(x)"}},
				},
			},
			{
				QualifiedName: "Foo",
				Kind:          model.KindModule,
				Methods: []model.Method{
					{Name: "helper", Owner: "Foo", Visibility: model.Public, Kind: model.ClassMethod, RawBody: "raw"},
				},
			},
		},
	}
}

func TestBuildOrdering(t *testing.T) {
	doc := Build(fixture())

	require.Equal(t, "lib/foo.rb", doc.Files[0].Name)
	require.Equal(t, "lib/foo_rb.html", doc.Files[0].Path)
	require.Equal(t, "README.md", doc.Files[1].Name)

	require.Equal(t, "Foo", doc.Types[0].Name)
	require.Equal(t, "Foo::Bar", doc.Types[1].Name)
	require.Equal(t, "Foo/Bar.html", doc.Types[1].Path)

	var labels []string
	for _, m := range doc.Methods {
		labels = append(labels, m.Label)
	}
	require.Equal(t, []string{"helper (Foo)", "baz (Foo::Bar)", "zap (Foo::Bar)"}, labels)
	require.Equal(t, "Foo.html#method-c-helper", doc.Methods[0].Path)
	require.Equal(t, "raw", doc.Methods[0].Body)
}

func TestBuildEmptyModel(t *testing.T) {
	data, err := Marshal(Build(&model.Static{}))
	require.NoError(t, err)
	require.Equal(t, "{\n  \"files\": [],\n  \"types\": [],\n  \"methods\": []\n}\n", string(data))
}

func TestMarshalEveryFieldPresent(t *testing.T) {
	data, err := Marshal(Build(fixture()))
	require.NoError(t, err)

	var raw map[string][]map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	want := map[string][]string{
		"files":   {"name", "path", "description"},
		"types":   {"name", "kind", "superclass", "path", "description", "includes", "constants", "attributes", "methods"},
		"methods": {"name", "label", "owner", "visibility", "kind", "path", "signatures", "description", "body"},
	}
	for collection, keys := range want {
		require.NotEmpty(t, raw[collection], collection)
		for _, rec := range raw[collection] {
			for _, k := range keys {
				require.Contains(t, rec, k, "%s record missing %q", collection, k)
				require.NotNil(t, rec[k], "%s.%s is null", collection, k)
			}
		}
	}
}

func TestExportDeterministic(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(filepath.Join(dir, "out"))

	p1, err := e.Export(context.Background(), fixture())
	require.NoError(t, err)
	first, err := os.ReadFile(p1)
	require.NoError(t, err)

	// Same entities, different host order for types.
	shuffled := fixture()
	shuffled.Types[0], shuffled.Types[1] = shuffled.Types[1], shuffled.Types[0]
	p2, err := e.Export(context.Background(), shuffled)
	require.NoError(t, err)
	second, err := os.ReadFile(p2)
	require.NoError(t, err)

	require.Equal(t, filepath.Join(dir, "out", FileName), p1)
	require.Equal(t, string(first), string(second))
}

func TestExportRejectsInvalidModel(t *testing.T) {
	bad := &model.Static{Types: []model.Type{
		{QualifiedName: "A", Kind: model.KindClass},
		{QualifiedName: "A", Kind: model.KindClass},
	}}
	_, err := NewExporter(t.TempDir()).Export(context.Background(), bad)
	require.Error(t, err)
	require.True(t, ferrors.IsCategory(err, ferrors.CategoryModel))
}

func TestExportCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewExporter(t.TempDir()).Export(ctx, fixture())
	require.True(t, ferrors.IsCategory(err, ferrors.CategoryCanceled))
}

func TestExportUnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := NewExporter(filepath.Join(blocker, "out")).Export(context.Background(), fixture())
	require.Error(t, err)
	require.True(t, ferrors.IsCategory(err, ferrors.CategoryFileSystem))
}
