package sprite

import (
	"context"
	"image/png"

	"github.com/arthur-debert/pokedex/pkg/errors"
	"github.com/arthur-debert/pokedex/pkg/fetch"
	"github.com/arthur-debert/pokedex/pkg/logging"
)

// Fetcher downloads and decodes sprites
type Fetcher struct {
	client *fetch.Client
}

// NewFetcher creates a sprite fetcher on top of client
func NewFetcher(client *fetch.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch downloads the PNG at url and decodes it
func (f *Fetcher) Fetch(ctx context.Context, url string) (*PixelGrid, error) {
	logger := logging.GetLogger("sprite")
	if url == "" {
		return nil, errors.New(errors.ErrNotFound, "no sprite url")
	}

	body, err := f.client.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	img, err := png.Decode(body)
	if err != nil {
		return nil, decodeError(err).WithDetail("url", url)
	}
	grid := FromImage(img)

	logger.Debug().
		Str("url", url).
		Int("width", grid.Width()).
		Int("height", grid.Height()).
		Msg("Sprite decoded")

	return grid, nil
}
