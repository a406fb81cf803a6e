package core

import (
	"context"
	"io"
	"net/http"

	"github.com/arthur-debert/pokedex/pkg/config"
	"github.com/arthur-debert/pokedex/pkg/errors"
	"github.com/arthur-debert/pokedex/pkg/fetch"
	"github.com/arthur-debert/pokedex/pkg/logging"
	"github.com/arthur-debert/pokedex/pkg/pokeapi"
	"github.com/arthur-debert/pokedex/pkg/render"
	"github.com/arthur-debert/pokedex/pkg/sprite"
	"github.com/arthur-debert/pokedex/pkg/types"
	"github.com/arthur-debert/pokedex/pkg/ui"
)

// LookupOptions contains everything a lookup needs
type LookupOptions struct {
	Search string

	APIBaseURL       string
	UserAgent        string
	HTTPClient       *http.Client
	SpriteSource     sprite.Source
	PokemondbBaseURL string

	// Art enables fetching and rendering the sprite
	Art   bool
	Mode  render.Mode
	Width int

	// SaveSprite, when set, is the path the raw sprite is downloaded to
	SaveSprite string
}

// OptionsFromConfig builds lookup options from a validated configuration.
// Art is rendered only when it is enabled and the format displays it.
func OptionsFromConfig(search string, cfg *config.Config, settings *config.Settings, saveSprite string) LookupOptions {
	return LookupOptions{
		Search:           search,
		APIBaseURL:       cfg.API.BaseURL,
		UserAgent:        cfg.API.UserAgent,
		SpriteSource:     settings.SpriteSource,
		PokemondbBaseURL: cfg.Sprite.PokemondbBaseURL,
		Art:              cfg.Render.Enabled && ui.WantsArt(settings.Format),
		Mode:             settings.Mode,
		Width:            cfg.Sprite.Width,
		SaveSprite:       saveSprite,
	}
}

// Lookup fetches a pokemon and, when requested, its rendered sprite art
func Lookup(ctx context.Context, opts LookupOptions) (*types.Entry, error) {
	logger := logging.GetLogger("core.lookup")
	done := logging.LogOperationStart(logger, "lookup")
	defer done()

	logger.Debug().
		Str("search", opts.Search).
		Str("source", opts.SpriteSource.String()).
		Bool("art", opts.Art).
		Str("mode", opts.Mode.String()).
		Int("width", opts.Width).
		Msg("Starting lookup")

	client := fetch.New(opts.HTTPClient, opts.UserAgent)

	pokemon, err := pokeapi.New(opts.APIBaseURL, client).FetchPokemon(ctx, opts.Search)
	if err != nil {
		return nil, err
	}

	entry := &types.Entry{Pokemon: pokemon}

	needSprite := opts.Art || opts.SaveSprite != ""
	spriteURL, err := sprite.ResolveURL(pokemon, opts.SpriteSource, opts.PokemondbBaseURL)
	if err != nil {
		if needSprite {
			return nil, err
		}
		spriteURL = pokemon.Sprites.FrontDefault
	}
	entry.SpriteURL = spriteURL

	if opts.Art {
		grid, err := sprite.NewFetcher(client).Fetch(ctx, spriteURL)
		if err != nil {
			return nil, err
		}
		grid = sprite.Scale(grid, opts.Width)
		entry.Art = render.Render(grid, opts.Mode)

		logger.Debug().
			Int("width", grid.Width()).
			Int("height", grid.Height()).
			Int("lines", len(entry.Art)).
			Msg("Sprite rendered")
	}

	if opts.SaveSprite != "" {
		if err := sprite.Save(ctx, spriteURL, opts.SaveSprite); err != nil {
			return nil, err
		}
	}

	return entry, nil
}

// Present writes the entry to out in the given format
func Present(entry *types.Entry, format ui.Format, out io.Writer) error {
	renderer, err := ui.NewRenderer(format, out)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to create renderer")
	}
	return renderer.RenderEntry(entry)
}
