package config

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/pokedex/pkg/errors"
)

// Dump renders the configuration as TOML, in the same layout as the config file
func Dump(cfg *Config) (string, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return string(out), nil
}
