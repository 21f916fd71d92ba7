package site

import (
	ferrors "git.home.luguber.info/inful/emerald/internal/errors"
	"git.home.luguber.info/inful/emerald/internal/model"
	"git.home.luguber.info/inful/emerald/internal/paths"
	"git.home.luguber.info/inful/emerald/internal/templates"
)

// IndexPage is the site entry page written at the output root.
const IndexPage = "index.html"

// checkCollisions fails when two pages would be written to the same path. The index
// page is reserved; a main page is copied there explicitly.
func checkCollisions(files []model.File, types []model.Type) error {
	owners := map[string]string{IndexPage: "index page"}
	claim := func(p, owner string) error {
		if prev, taken := owners[p]; taken {
			return ferrors.PathCollision(p, prev, owner)
		}
		owners[p] = owner
		return nil
	}
	for _, f := range files {
		if err := claim(paths.ForFile(f.RelativeName), "file "+f.RelativeName); err != nil {
			return err
		}
	}
	for _, t := range types {
		if err := claim(paths.ForType(t.QualifiedName), "type "+t.QualifiedName); err != nil {
			return err
		}
	}
	return nil
}

// findMainPage returns the file named by mainPage, or nil when mainPage is empty.
func findMainPage(files []model.File, mainPage string) (*model.File, error) {
	if mainPage == "" {
		return nil, nil
	}
	for i := range files {
		if files[i].RelativeName == mainPage {
			return &files[i], nil
		}
	}
	return nil, ferrors.ConfigInvalid("site.main_page", "no documented file named "+mainPage)
}

// buildNavigation lists files in host order, types as given and every method in
// (owner, name) order.
func buildNavigation(files []model.File, types []model.Type) *templates.Navigation {
	methods := model.SortedMethods(types)
	nav := &templates.Navigation{
		Files:   make([]templates.NavEntry, 0, len(files)),
		Types:   make([]templates.NavEntry, 0, len(types)),
		Methods: make([]templates.NavEntry, 0, len(methods)),
	}
	for _, f := range files {
		nav.Files = append(nav.Files, templates.NavEntry{Label: f.RelativeName, Href: paths.Href(paths.ForFile(f.RelativeName))})
	}
	for _, t := range types {
		nav.Types = append(nav.Types, templates.NavEntry{Label: t.QualifiedName, Href: paths.Href(paths.ForType(t.QualifiedName))})
	}
	for _, m := range methods {
		nav.Methods = append(nav.Methods, templates.NavEntry{Label: m.Name + " (" + m.Owner + ")", Href: paths.MethodHref(m)})
	}
	return nav
}
