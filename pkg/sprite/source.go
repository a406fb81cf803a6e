package sprite

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/arthur-debert/pokedex/pkg/errors"
	"github.com/arthur-debert/pokedex/pkg/types"
)

// Source selects where the sprite image comes from
type Source int

const (
	// SourceAPI uses sprites.front_default from the pokemon record
	SourceAPI Source = iota
	// SourcePokemondb builds an icon url on the pokemondb mirror from the name
	SourcePokemondb
)

// String returns the string representation of the source
func (s Source) String() string {
	switch s {
	case SourceAPI:
		return "api"
	case SourcePokemondb:
		return "pokemondb"
	default:
		return "unknown"
	}
}

// ParseSource parses a string into a Source value
func ParseSource(s string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "api", "pokeapi", "":
		return SourceAPI, nil
	case "pokemondb":
		return SourcePokemondb, nil
	default:
		return SourceAPI, fmt.Errorf("unknown sprite source: %s", s)
	}
}

// Sources lists the accepted source names
func Sources() []string {
	return []string{SourceAPI.String(), SourcePokemondb.String()}
}

// ResolveURL returns the sprite url for p
func ResolveURL(p *types.Pokemon, source Source, pokemondbBase string) (string, error) {
	switch source {
	case SourcePokemondb:
		if p.Name == "" {
			return "", errors.New(errors.ErrInvalidInput, "cannot build a pokemondb url without a name")
		}
		return strings.TrimRight(pokemondbBase, "/") + "/" + url.PathEscape(p.Name) + ".png", nil
	default:
		if p.Sprites.FrontDefault == "" {
			return "", errors.Newf(errors.ErrNotFound, "%s has no default sprite", p.Name).
				WithDetail("id", p.ID)
		}
		return p.Sprites.FrontDefault, nil
	}
}
