// Package pokeapi fetches pokemon metadata from the pokeapi.co REST API
package pokeapi

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/arthur-debert/pokedex/pkg/errors"
	"github.com/arthur-debert/pokedex/pkg/fetch"
	"github.com/arthur-debert/pokedex/pkg/logging"
	"github.com/arthur-debert/pokedex/pkg/types"
)

// DefaultBaseURL is the public v2 API
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// Client fetches pokemon records
type Client struct {
	baseURL string
	http    *fetch.Client
}

// New creates a client for the API rooted at baseURL
func New(baseURL string, httpClient *fetch.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// NormalizeSearch trims and lower-cases a name or id
func NormalizeSearch(search string) string {
	return strings.ToLower(strings.TrimSpace(search))
}

// PokemonURL returns the endpoint for a normalized search term
func (c *Client) PokemonURL(search string) string {
	return c.baseURL + "/pokemon/" + url.PathEscape(search)
}

// FetchPokemon looks a pokemon up by name or numeric id
func (c *Client) FetchPokemon(ctx context.Context, search string) (*types.Pokemon, error) {
	logger := logging.GetLogger("pokeapi")

	search = NormalizeSearch(search)
	if search == "" {
		return nil, errors.New(errors.ErrArgumentMissing, "a pokemon name or id is required")
	}

	endpoint := c.PokemonURL(search)
	logger.Debug().Str("search", search).Str("url", endpoint).Msg("Fetching pokemon")

	body, err := c.http.Get(ctx, endpoint)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrNotFound) {
			return nil, errors.Wrapf(err, errors.ErrNotFound, "no pokemon matches %q", search).
				WithDetail("search", search)
		}
		return nil, err
	}
	defer body.Close()

	var p types.Pokemon
	if err := json.NewDecoder(body).Decode(&p); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDecode, "malformed response for %q", search).
			WithDetail("url", endpoint)
	}

	logger.Debug().
		Uint16("id", p.ID).
		Str("name", p.Name).
		Strs("types", p.TypeNames()).
		Msg("Pokemon decoded")

	return &p, nil
}
