package types

// Entry is a looked-up pokemon ready to be presented
type Entry struct {
	Pokemon *Pokemon
	// SpriteURL is the url the sprite was (or would be) fetched from
	SpriteURL string
	// Art holds the rendered sprite lines, nil when art was not rendered
	Art []string
}

// HasArt reports whether the entry carries rendered art
func (e *Entry) HasArt() bool {
	return len(e.Art) > 0
}
