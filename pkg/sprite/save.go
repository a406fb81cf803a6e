package sprite

import (
	"context"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter"

	"github.com/arthur-debert/pokedex/pkg/errors"
	"github.com/arthur-debert/pokedex/pkg/logging"
)

// Save downloads the sprite at src into the file dst, creating parent
// directories as needed. The bytes are stored as served, without decoding.
func Save(ctx context.Context, src, dst string) error {
	logger := logging.GetLogger("sprite")

	if src == "" {
		return errors.New(errors.ErrNotFound, "no sprite url to save")
	}

	abs, err := filepath.Abs(dst)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "invalid destination %s", dst)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", filepath.Dir(abs))
	}

	if err := getter.GetFile(abs, src, getter.WithContext(ctx)); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to save sprite to %s", dst).
			WithDetail("url", src)
	}

	logger.Info().Str("url", src).Str("path", abs).Msg("Sprite saved")
	return nil
}
