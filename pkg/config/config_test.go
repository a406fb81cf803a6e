package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pokedex/pkg/errors"
	"github.com/arthur-debert/pokedex/pkg/render"
	"github.com/arthur-debert/pokedex/pkg/sprite"
	"github.com/arthur-debert/pokedex/pkg/ui"
)

func validConfig() *Config {
	return &Config{
		API:    API{BaseURL: "https://pokeapi.co/api/v2", UserAgent: "test"},
		Sprite: Sprite{Source: "api", PokemondbBaseURL: "https://img.pokemondb.net/sprites/sword-shield/icon"},
		Render: Render{Enabled: true, Mode: "halfblock"},
		Output: Output{Format: "plain"},
	}
}

func TestValidate(t *testing.T) {
	settings, err := validConfig().Validate()
	require.NoError(t, err)

	assert.Equal(t, ui.FormatText, settings.Format)
	assert.Equal(t, render.ModeHalfBlock, settings.Mode)
	assert.Equal(t, sprite.SourceAPI, settings.SpriteSource)
}

func TestValidateParsesAlternatives(t *testing.T) {
	cfg := validConfig()
	cfg.Output.Format = "table"
	cfg.Render.Mode = "fullcolor"
	cfg.Sprite.Source = "pokemondb"

	settings, err := cfg.Validate()
	require.NoError(t, err)

	assert.Equal(t, ui.FormatTerminal, settings.Format)
	assert.Equal(t, render.ModeFullColor, settings.Mode)
	assert.Equal(t, sprite.SourcePokemondb, settings.SpriteSource)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown format", func(c *Config) { c.Output.Format = "xml" }},
		{"unknown mode", func(c *Config) { c.Render.Mode = "braille" }},
		{"unknown source", func(c *Config) { c.Sprite.Source = "bulbapedia" }},
		{"negative width", func(c *Config) { c.Sprite.Width = -1 }},
		{"empty base url", func(c *Config) { c.API.BaseURL = "" }},
		{"non http base url", func(c *Config) { c.API.BaseURL = "ftp://pokeapi.co" }},
		{"empty pokemondb url", func(c *Config) {
			c.Sprite.Source = "pokemondb"
			c.Sprite.PokemondbBaseURL = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			_, err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid), "got %v", err)
		})
	}
}

func TestDump(t *testing.T) {
	out, err := Dump(validConfig())
	require.NoError(t, err)

	assert.Contains(t, out, "[api]")
	assert.Contains(t, out, "base_url = 'https://pokeapi.co/api/v2'")
	assert.Contains(t, out, "[render]")
	assert.Contains(t, out, "mode = 'halfblock'")
	assert.Contains(t, out, "enabled = true")
}
