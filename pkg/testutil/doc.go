// Package testutil provides utilities for testing pokedex components.
//
// Key components:
//   - TestEnvironment: points the XDG config and state homes at a temp dir
//     so tests never read the user's config or write to their log
//   - FakeAPI: an httptest server that serves pokemon records and sprites
//     the way PokeAPI and its sprite hosts do
//   - PNG helpers: in-memory sprites with known pixels
//
// Each test gets its own environment and server; nothing is shared.
package testutil
