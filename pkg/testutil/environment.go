package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestEnvironment isolates a test from the user's pokedex files
type TestEnvironment struct {
	Root       string
	ConfigHome string
	StateHome  string

	t *testing.T
}

// NewTestEnvironment creates temp XDG homes and clears the variables that
// change pokedex behaviour
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:       root,
		ConfigHome: filepath.Join(root, "config"),
		StateHome:  filepath.Join(root, "state"),
		t:          t,
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("NO_COLOR", "")
	for _, key := range []string{
		"POKEDEX_API_BASE_URL",
		"POKEDEX_API_USER_AGENT",
		"POKEDEX_SPRITE_SOURCE",
		"POKEDEX_SPRITE_POKEMONDB_BASE_URL",
		"POKEDEX_SPRITE_WIDTH",
		"POKEDEX_RENDER_ENABLED",
		"POKEDEX_RENDER_MODE",
		"POKEDEX_OUTPUT_FORMAT",
		"POKEDEX_OUTPUT_STYLES_FILE",
	} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("Failed to unset %s: %v", key, err)
		}
	}

	return env
}

// Path returns a path under the environment root
func (e *TestEnvironment) Path(elem ...string) string {
	return filepath.Join(append([]string{e.Root}, elem...)...)
}

// WriteFile writes content to a path under the root and returns the full path
func (e *TestEnvironment) WriteFile(name, content string) string {
	e.t.Helper()

	path := e.Path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// WriteUserConfig writes the default user config file
func (e *TestEnvironment) WriteUserConfig(content string) string {
	e.t.Helper()
	return e.WriteFile(filepath.Join("config", "pokedex", "config.toml"), content)
}
