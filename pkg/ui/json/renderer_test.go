package json

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pokedex/pkg/types"
)

func TestRenderEntry(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf)
	require.NoError(t, err)

	entry := &types.Entry{
		Pokemon: &types.Pokemon{
			ID:     25,
			Name:   "pikachu",
			Weight: 60,
			Height: 4,
			Types: []types.TypeSlot{
				{Slot: 1, Type: types.NamedAPIType{Name: "electric"}},
			},
		},
		SpriteURL: "https://raw.example/25.png",
		Art:       []string{"\x1b[38;2;1;2;3m▀\x1b[0m"},
	}
	require.NoError(t, r.RenderEntry(entry))

	var got Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, uint16(25), got.ID)
	assert.Equal(t, "pikachu", got.Name)
	assert.InDelta(t, 6.0, got.WeightKg, 1e-9)
	assert.InDelta(t, 0.4, got.HeightM, 1e-9)
	assert.Equal(t, []string{"electric"}, got.Types)
	assert.Equal(t, "https://raw.example/25.png", got.SpriteURL)
	assert.Equal(t, entry.Art, got.Art)
}

func TestRenderEntryOmitsMissingArt(t *testing.T) {
	var buf bytes.Buffer
	r, _ := New(&buf)

	entry := &types.Entry{Pokemon: &types.Pokemon{ID: 1, Name: "bulbasaur"}}
	require.NoError(t, r.RenderEntry(entry))

	assert.NotContains(t, buf.String(), `"art"`)
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	r, _ := New(&buf)

	require.NoError(t, r.RenderError(stderrors.New("boom")))
	assert.JSONEq(t, `{"error": "boom"}`, buf.String())
}
