package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// Common sprite colours
var (
	Red    = color.NRGBA{R: 255, A: 255}
	Green  = color.NRGBA{G: 255, A: 255}
	Blue   = color.NRGBA{B: 255, A: 255}
	Yellow = color.NRGBA{R: 255, G: 204, B: 0, A: 255}
	Clear  = color.NRGBA{}
)

// Image builds an image from rows of colours. All rows must have the same length.
func Image(rows ...[]color.NRGBA) *image.NRGBA {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y, row := range rows {
		for x, c := range row {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// Solid builds a w x h image of a single colour
func Solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// PNG encodes img
func PNG(t *testing.T, img image.Image) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
	return buf.Bytes()
}
