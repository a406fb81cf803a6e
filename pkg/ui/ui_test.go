package ui_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pokedex/pkg/types"
	"github.com/arthur-debert/pokedex/pkg/ui"
	"github.com/arthur-debert/pokedex/pkg/ui/json"
	"github.com/arthur-debert/pokedex/pkg/ui/terminal"
	"github.com/arthur-debert/pokedex/pkg/ui/text"
)

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		name   string
		format ui.Format
		want   interface{}
	}{
		{name: "table", format: ui.FormatTerminal, want: &terminal.Renderer{}},
		{name: "plain", format: ui.FormatText, want: &text.Renderer{}},
		{name: "json", format: ui.FormatJSON, want: &json.Renderer{}},
		{name: "auto on a buffer is plain", format: ui.FormatAuto, want: &text.Renderer{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ui.NewRenderer(tt.format, &bytes.Buffer{})
			require.NoError(t, err)
			assert.IsType(t, tt.want, r)
		})
	}
}

func TestNewRendererUnknownFormat(t *testing.T) {
	_, err := ui.NewRenderer(ui.Format(42), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestWantsArt(t *testing.T) {
	assert.True(t, ui.WantsArt(ui.FormatTerminal))
	assert.True(t, ui.WantsArt(ui.FormatJSON))
	assert.False(t, ui.WantsArt(ui.FormatText))
}

func TestRenderersShareEntry(t *testing.T) {
	entry := &types.Entry{
		Pokemon: &types.Pokemon{
			ID: 25, Name: "pikachu", Weight: 60, Height: 4,
			Types: []types.TypeSlot{{Slot: 1, Type: types.NamedAPIType{Name: "electric"}}},
		},
		SpriteURL: "https://raw.example/25.png",
	}

	for _, format := range []ui.Format{ui.FormatText, ui.FormatTerminal, ui.FormatJSON} {
		var buf bytes.Buffer
		r, err := ui.NewRenderer(format, &buf)
		require.NoError(t, err)
		require.NoError(t, r.RenderEntry(entry))
		assert.Contains(t, buf.String(), "electric", format.String())
	}
}
