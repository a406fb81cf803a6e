package config

import (
	"net/url"

	"github.com/arthur-debert/pokedex/internal/version"
	"github.com/arthur-debert/pokedex/pkg/errors"
	"github.com/arthur-debert/pokedex/pkg/render"
	"github.com/arthur-debert/pokedex/pkg/sprite"
	"github.com/arthur-debert/pokedex/pkg/ui"
	"github.com/arthur-debert/pokedex/pkg/utils"
)

// Config is the effective pokedex configuration
type Config struct {
	API    API    `koanf:"api" toml:"api"`
	Sprite Sprite `koanf:"sprite" toml:"sprite"`
	Render Render `koanf:"render" toml:"render"`
	Output Output `koanf:"output" toml:"output"`
}

// API configures the metadata endpoint
type API struct {
	BaseURL   string `koanf:"base_url" toml:"base_url"`
	UserAgent string `koanf:"user_agent" toml:"user_agent"`
}

// Sprite configures where sprites come from and their size
type Sprite struct {
	Source           string `koanf:"source" toml:"source"`
	PokemondbBaseURL string `koanf:"pokemondb_base_url" toml:"pokemondb_base_url"`
	Width            int    `koanf:"width" toml:"width"`
}

// Render configures the sprite art
type Render struct {
	Enabled bool   `koanf:"enabled" toml:"enabled"`
	Mode    string `koanf:"mode" toml:"mode"`
}

// Output configures the presenter
type Output struct {
	Format     string `koanf:"format" toml:"format"`
	StylesFile string `koanf:"styles_file" toml:"styles_file"`
}

// Settings is the typed view of a validated Config
type Settings struct {
	Format       ui.Format
	Mode         render.Mode
	SpriteSource sprite.Source
}

// Validate checks every enumerated and numeric value and returns the parsed settings
func (c *Config) Validate() (*Settings, error) {
	format, err := ui.ParseFormat(c.Output.Format)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid output.format").
			WithDetail("value", c.Output.Format)
	}

	mode, err := render.ParseMode(c.Render.Mode)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid render.mode").
			WithDetail("value", c.Render.Mode)
	}

	source, err := sprite.ParseSource(c.Sprite.Source)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid sprite.source").
			WithDetail("value", c.Sprite.Source)
	}

	if c.Sprite.Width < 0 {
		return nil, errors.Newf(errors.ErrConfigValid, "sprite.width must not be negative, got %d", c.Sprite.Width)
	}

	if err := validateBaseURL("api.base_url", c.API.BaseURL); err != nil {
		return nil, err
	}
	if source == sprite.SourcePokemondb {
		if err := validateBaseURL("sprite.pokemondb_base_url", c.Sprite.PokemondbBaseURL); err != nil {
			return nil, err
		}
	}

	return &Settings{
		Format:       format,
		Mode:         mode,
		SpriteSource: source,
	}, nil
}

func validateBaseURL(key, raw string) error {
	if raw == "" {
		return errors.Newf(errors.ErrConfigValid, "%s must not be empty", key)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "%s is not a valid url", key)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Newf(errors.ErrConfigValid, "%s must be an http(s) url, got %q", key, raw)
	}
	return nil
}

func postProcessConfig(cfg *Config) {
	if cfg.API.UserAgent == "" {
		cfg.API.UserAgent = version.UserAgent()
	}
	cfg.Output.StylesFile = utils.ExpandPath(cfg.Output.StylesFile)
}
