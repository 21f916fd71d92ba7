package site

import (
	"context"

	"git.home.luguber.info/inful/emerald/internal/model"
)

func stageValidate(_ context.Context, bs *BuildState) error {
	if err := model.Validate(bs.Provider); err != nil {
		return err
	}
	bs.Files = bs.Provider.AllFiles()
	bs.Types = model.SortedTypes(bs.Provider.AllTypes())

	if err := checkCollisions(bs.Files, bs.Types); err != nil {
		return err
	}
	main, err := findMainPage(bs.Files, bs.Generator.config.Site.MainPage)
	if err != nil {
		return err
	}
	bs.MainPage = main
	bs.Nav = buildNavigation(bs.Files, bs.Types)
	return nil
}
