package config

import "path/filepath"

const (
	DefaultOutputDirectory = "doc"
	DefaultTitle           = "Documentation"
)

func applyDefaults(cfg *Config) {
	if cfg.Generator == "" {
		cfg.Generator = GeneratorHTML
	}
	cfg.Generator = NormalizeGenerator(string(cfg.Generator))
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = DefaultOutputDirectory
	}
	cfg.Output.Directory = filepath.Clean(cfg.Output.Directory)
	if cfg.Site.Title == "" {
		cfg.Site.Title = DefaultTitle
	}
}
