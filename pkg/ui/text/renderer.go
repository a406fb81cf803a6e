// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/pokedex/pkg/types"
)

// Renderer prints one "key: value" line per field
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderEntry prints the pokemon fields. Art is never printed in plain text.
func (r *Renderer) RenderEntry(entry *types.Entry) error {
	p := entry.Pokemon

	lines := []string{
		fmt.Sprintf("id: %d", p.ID),
		fmt.Sprintf("name: %s", p.Name),
		fmt.Sprintf("weight: %s", p.FormatWeight()),
		fmt.Sprintf("height: %s", p.FormatHeight()),
	}
	if len(p.Types) > 0 {
		lines = append(lines, fmt.Sprintf("types: %s", p.JoinedTypes()))
	}
	lines = append(lines, fmt.Sprintf("sprite url: %s", entry.SpriteURL))

	for _, line := range lines {
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}
