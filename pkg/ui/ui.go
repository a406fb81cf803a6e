// Package ui provides a unified interface for presenting a looked-up pokemon.
// It supports the bordered table, plain text, and JSON output formats.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/pokedex/pkg/types"
	"github.com/arthur-debert/pokedex/pkg/ui/json"
	"github.com/arthur-debert/pokedex/pkg/ui/terminal"
	"github.com/arthur-debert/pokedex/pkg/ui/text"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderEntry presents a looked-up pokemon
	RenderEntry(entry *types.Entry) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error
}

// NewRenderer creates a new renderer based on the specified format.
// It detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

// WantsArt reports whether the format displays sprite art.
// Plain text prints the fields only.
func WantsArt(format Format) bool {
	return format == FormatTerminal || format == FormatJSON
}
