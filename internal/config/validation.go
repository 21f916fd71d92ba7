package config

import (
	"strings"

	ferrors "git.home.luguber.info/inful/emerald/internal/errors"
)

// Validate reports the first invalid setting as a config error.
func (c *Config) Validate() error {
	if !c.Generator.Valid() {
		return ferrors.ConfigInvalid("generator", "unsupported value "+string(c.Generator)+" (want html or json)")
	}
	if strings.TrimSpace(c.Output.Directory) == "" {
		return ferrors.ConfigInvalid("output.directory", "must not be empty")
	}
	if c.Assets.Directory != "" && c.Assets.Directory == c.Output.Directory {
		return ferrors.ConfigInvalid("assets.directory", "must differ from output.directory")
	}
	return nil
}
