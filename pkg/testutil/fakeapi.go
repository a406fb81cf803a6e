package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/arthur-debert/pokedex/pkg/types"
)

// APIPath is the path the fake metadata API is served under
const APIPath = "/api/v2"

// FakeAPI serves pokemon records under /api/v2/pokemon/ and any other
// registered file, such as sprites, at its own path
type FakeAPI struct {
	*httptest.Server

	mu       sync.Mutex
	pokemon  map[string][]byte
	files    map[string][]byte
	hits     map[string]int
	agents   []string
	failWith map[string]int
}

// NewFakeAPI starts a server that is closed when the test ends
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()

	f := &FakeAPI{
		pokemon:  make(map[string][]byte),
		files:    make(map[string][]byte),
		hits:     make(map[string]int),
		failWith: make(map[string]int),
	}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

// BaseURL is the metadata API root to configure pokedex with
func (f *FakeAPI) BaseURL() string {
	return f.URL + APIPath
}

// FileURL returns the absolute url of path on the server
func (f *FakeAPI) FileURL(path string) string {
	return f.URL + path
}

// AddPokemon serves p under its name, its id and any extra keys
func (f *FakeAPI) AddPokemon(t *testing.T, p *types.Pokemon, keys ...string) {
	t.Helper()

	body, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Failed to encode pokemon: %v", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	keys = append(keys, p.Name, strconv.Itoa(int(p.ID)))
	for _, k := range keys {
		f.pokemon[k] = body
	}
}

// AddRaw serves body for the pokemon key as is, valid JSON or not
func (f *FakeAPI) AddRaw(key string, body []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pokemon[key] = body
}

// AddFile serves body at path
func (f *FakeAPI) AddFile(path string, body []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[path] = body
}

// Fail answers every request for path with status
func (f *FakeAPI) Fail(path string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failWith[path] = status
}

// Hits returns how many requests reached path
func (f *FakeAPI) Hits(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[path]
}

// UserAgents returns the User-Agent header of every request so far
func (f *FakeAPI) UserAgents() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.agents...)
}

func (f *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.hits[r.URL.Path]++
	f.agents = append(f.agents, r.UserAgent())
	status, failing := f.failWith[r.URL.Path]
	var body []byte
	var ok bool
	if key, isPokemon := strings.CutPrefix(r.URL.Path, APIPath+"/pokemon/"); isPokemon {
		body, ok = f.pokemon[key]
		w.Header().Set("Content-Type", "application/json")
	} else {
		body, ok = f.files[r.URL.Path]
	}
	f.mu.Unlock()

	switch {
	case failing:
		http.Error(w, http.StatusText(status), status)
	case !ok:
		http.NotFound(w, r)
	default:
		_, _ = w.Write(body)
	}
}

// Pikachu returns the record used across the tests: id 25, 6.0kg, 0.4m,
// a single electric type and the given sprite url
func Pikachu(spriteURL string) *types.Pokemon {
	return &types.Pokemon{
		ID:      25,
		Name:    "pikachu",
		Weight:  60,
		Height:  4,
		Sprites: types.Sprites{FrontDefault: spriteURL},
		Types: []types.TypeSlot{
			{Slot: 1, Type: types.NamedAPIType{Name: "electric"}},
		},
	}
}
