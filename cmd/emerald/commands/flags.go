package commands

import (
	"git.home.luguber.info/inful/emerald/internal/config"
)

// GenerateFlags are shared by generate and watch. Set flags override the
// configuration file.
type GenerateFlags struct {
	Model       string `short:"m" help:"Host model file (.yaml, .yml or .json)" required:"" type:"existingfile"`
	Output      string `short:"o" help:"Output directory"`
	Generator   string `short:"g" help:"Generator to run (html or json)"`
	Main        string `name:"main" help:"Relative name of the file to use as index.html"`
	Title       string `name:"title" help:"Site title used by the placeholder index page"`
	VerifyLinks bool   `name:"verify-links" help:"Check every relative link after generating the HTML site"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics for the run to this file"`
}

// apply copies set flags over cfg and validates the result.
func (f *GenerateFlags) apply(cfg *config.Config) error {
	if f.Output != "" {
		cfg.Output.Directory = f.Output
	}
	if f.Generator != "" {
		cfg.Generator = config.NormalizeGenerator(f.Generator)
	}
	if f.Main != "" {
		cfg.Site.MainPage = f.Main
	}
	if f.Title != "" {
		cfg.Site.Title = f.Title
	}
	if f.VerifyLinks {
		cfg.VerifyLinks = true
	}
	if f.MetricsFile != "" {
		cfg.Metrics.Textfile = f.MetricsFile
	}
	return cfg.Validate()
}
