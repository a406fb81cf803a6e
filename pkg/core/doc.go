// Package core implements the pokedex lookup pipeline.
//
// A lookup runs strictly in order:
//
//  1. Fetch the pokemon record from the metadata API
//  2. Resolve the sprite url for the configured source
//  3. Fetch and decode the sprite, optionally scale it, and render the art
//  4. Optionally save the raw sprite to disk
//
// Any failure aborts the lookup and is returned as a *errors.PokedexError.
// Nothing is retried or cached. Present hands the resulting entry to the
// renderer for the chosen output format.
package core
