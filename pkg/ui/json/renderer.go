// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/pokedex/pkg/types"
)

// Document is the JSON shape of a looked-up pokemon
type Document struct {
	ID        uint16   `json:"id"`
	Name      string   `json:"name"`
	Weight    uint16   `json:"weight"`
	Height    uint16   `json:"height"`
	WeightKg  float64  `json:"weight_kg"`
	HeightM   float64  `json:"height_m"`
	Types     []string `json:"types"`
	SpriteURL string   `json:"sprite_url"`
	Art       []string `json:"art,omitempty"`
}

// Renderer provides JSON output for machine consumption
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return &Renderer{
		output:  output,
		encoder: encoder,
	}, nil
}

// NewDocument builds the JSON document for an entry
func NewDocument(entry *types.Entry) Document {
	p := entry.Pokemon
	return Document{
		ID:        p.ID,
		Name:      p.Name,
		Weight:    p.Weight,
		Height:    p.Height,
		WeightKg:  p.WeightKg(),
		HeightM:   p.HeightM(),
		Types:     p.TypeNames(),
		SpriteURL: entry.SpriteURL,
		Art:       entry.Art,
	}
}

// RenderEntry renders the entry as an indented JSON document
func (r *Renderer) RenderEntry(entry *types.Entry) error {
	return r.encoder.Encode(NewDocument(entry))
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]string{
		"error": err.Error(),
	}
	return r.encoder.Encode(errorObj)
}
