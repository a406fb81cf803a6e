package testutil

import (
	"bytes"
	"encoding/json"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pokedex/pkg/types"
)

func get(t *testing.T, url string) (int, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestFakeAPIServesPokemonByNameAndID(t *testing.T) {
	api := NewFakeAPI(t)
	api.AddPokemon(t, Pikachu(api.FileURL("/sprites/25.png")))

	for _, key := range []string{"pikachu", "25"} {
		status, body := get(t, api.BaseURL()+"/pokemon/"+key)
		require.Equal(t, http.StatusOK, status)

		var p types.Pokemon
		require.NoError(t, json.Unmarshal(body, &p))
		assert.Equal(t, uint16(25), p.ID)
		assert.Equal(t, api.URL+"/sprites/25.png", p.Sprites.FrontDefault)
	}
	assert.Equal(t, 1, api.Hits("/api/v2/pokemon/25"))
}

func TestFakeAPIFilesAndFailures(t *testing.T) {
	api := NewFakeAPI(t)
	api.AddFile("/sprites/1.png", []byte("png"))
	api.Fail("/broken", http.StatusInternalServerError)

	status, body := get(t, api.FileURL("/sprites/1.png"))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "png", string(body))

	status, _ = get(t, api.FileURL("/broken"))
	assert.Equal(t, http.StatusInternalServerError, status)

	status, _ = get(t, api.BaseURL()+"/pokemon/missingno")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestImageAndPNG(t *testing.T) {
	img := Image(
		[]color.NRGBA{Red, Clear},
		[]color.NRGBA{Blue, Yellow},
	)

	decoded, err := png.Decode(bytes.NewReader(PNG(t, img)))
	require.NoError(t, err)
	assert.Equal(t, 2, decoded.Bounds().Dx())
	assert.Equal(t, 2, decoded.Bounds().Dy())

	r, g, b, a := decoded.At(1, 1).RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0xcccc, 0, 0xffff}, [4]uint32{r, g, b, a})
	_, _, _, a = decoded.At(1, 0).RGBA()
	assert.Zero(t, a)
}

func TestSolid(t *testing.T) {
	img := Solid(3, 2, Green)
	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, Green, img.NRGBAAt(2, 1))
}

func TestEnvironmentIsolatesXDG(t *testing.T) {
	t.Setenv("POKEDEX_RENDER_MODE", "fullcolor")
	env := NewTestEnvironment(t)

	assert.Equal(t, env.ConfigHome, os.Getenv("XDG_CONFIG_HOME"))
	assert.Equal(t, env.StateHome, os.Getenv("XDG_STATE_HOME"))
	_, set := os.LookupEnv("POKEDEX_RENDER_MODE")
	assert.False(t, set)

	path := env.WriteUserConfig("[render]\nmode = \"fullcolor\"\n")
	assert.Equal(t, env.Path("config", "pokedex", "config.toml"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fullcolor")
}
