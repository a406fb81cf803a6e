package sprite

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/nfnt/resize"

	"github.com/arthur-debert/pokedex/pkg/errors"
)

// PixelGrid is a decoded sprite. It is never modified after creation.
type PixelGrid struct {
	img    image.Image
	bounds image.Rectangle
}

// FromImage wraps img. The grid's origin is img's top-left corner.
func FromImage(img image.Image) *PixelGrid {
	return &PixelGrid{img: img, bounds: img.Bounds()}
}

// Decode reads a PNG
func Decode(r io.Reader) (*PixelGrid, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, decodeError(err)
	}
	return FromImage(img), nil
}

func decodeError(err error) *errors.PokedexError {
	return errors.Wrap(err, errors.ErrImageDecode, "failed to decode sprite png")
}

// Width is the number of columns
func (g *PixelGrid) Width() int {
	return g.bounds.Dx()
}

// Height is the number of rows
func (g *PixelGrid) Height() int {
	return g.bounds.Dy()
}

// RGBA returns the non-premultiplied 8-bit channels at (x, y)
func (g *PixelGrid) RGBA(x, y int) (r, gr, b, a uint8) {
	c := color.NRGBAModel.Convert(g.img.At(g.bounds.Min.X+x, g.bounds.Min.Y+y)).(color.NRGBA)
	return c.R, c.G, c.B, c.A
}

// Image returns the underlying image
func (g *PixelGrid) Image() image.Image {
	return g.img
}

// Scale shrinks the grid to width columns keeping the aspect ratio, using
// nearest neighbour sampling to keep the hard edges of sprite art. Widths of
// zero or not smaller than the current width return g unchanged.
func Scale(g *PixelGrid, width int) *PixelGrid {
	if width <= 0 || width >= g.Width() {
		return g
	}
	return FromImage(resize.Resize(uint(width), 0, g.img, resize.NearestNeighbor))
}
