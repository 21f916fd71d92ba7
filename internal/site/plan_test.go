package site

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/emerald/internal/model"
)

func TestCheckCollisionsDistinctPaths(t *testing.T) {
	files := []model.File{{RelativeName: "lib/foo.rb"}, {RelativeName: "README"}}
	types := []model.Type{{QualifiedName: "Foo"}, {QualifiedName: "Foo::Bar"}}
	require.NoError(t, checkCollisions(files, types))
}

func TestCheckCollisionsTypeVsType(t *testing.T) {
	// Validate rejects duplicates first; the planner still refuses them.
	types := []model.Type{{QualifiedName: "Foo::Bar"}, {QualifiedName: "Foo::Bar"}}
	err := checkCollisions(nil, types)
	require.Error(t, err)
	require.Contains(t, err.Error(), "output path collision")
}

func TestFindMainPage(t *testing.T) {
	files := []model.File{{RelativeName: "a.rb"}, {RelativeName: "README.md"}}

	f, err := findMainPage(files, "")
	require.NoError(t, err)
	require.Nil(t, f)

	f, err = findMainPage(files, "README.md")
	require.NoError(t, err)
	require.Equal(t, "README.md", f.RelativeName)

	_, err = findMainPage(files, "nope")
	require.Error(t, err)
}

func TestBuildNavigation(t *testing.T) {
	nav := buildNavigation(
		[]model.File{{RelativeName: "lib/foo.rb"}},
		[]model.Type{{QualifiedName: "Foo::Bar"}},
	)
	require.Equal(t, "lib/foo_rb.html", nav.Files[0].Href)
	require.Equal(t, "Foo/Bar.html", nav.Types[0].Href)
	require.Equal(t, "Foo::Bar", nav.Types[0].Label)
	require.Empty(t, nav.Methods)
}

func TestBuildNavigationEscapesHrefs(t *testing.T) {
	nav := buildNavigation([]model.File{{RelativeName: "lib/a#b.rb"}, {RelativeName: "lib/what?.rb"}}, nil)
	require.Equal(t, "lib/a%23b_rb.html", nav.Files[0].Href)
	require.Equal(t, "lib/what%3F_rb.html", nav.Files[1].Href)
}

func TestBuildNavigationMethodsOrdered(t *testing.T) {
	types := []model.Type{
		{QualifiedName: "Zed", Methods: []model.Method{
			{Name: "b", Owner: "Zed", Kind: model.InstanceMethod},
			{Name: "a", Owner: "Zed", Kind: model.InstanceMethod},
		}},
		{QualifiedName: "Alpha", Methods: []model.Method{
			{Name: "z", Owner: "Alpha", Kind: model.InstanceMethod},
			{Name: "new", Owner: "Alpha", Kind: model.Constructor},
		}},
	}
	nav := buildNavigation(nil, types)

	var labels, hrefs []string
	for _, e := range nav.Methods {
		labels = append(labels, e.Label)
		hrefs = append(hrefs, e.Href)
	}
	require.Equal(t, []string{"new (Alpha)", "z (Alpha)", "a (Zed)", "b (Zed)"}, labels)
	require.Equal(t, []string{
		"Alpha.html#method-c-new",
		"Alpha.html#method-i-z",
		"Zed.html#method-i-a",
		"Zed.html#method-i-b",
	}, hrefs)
}
