package render

import (
	"fmt"
	"strings"
)

// Mode selects the rendering strategy
type Mode int

const (
	// ModeHalfBlock renders two pixels per cell with half block glyphs
	ModeHalfBlock Mode = iota
	// ModeFullColor renders one pixel per cell as a coloured space
	ModeFullColor
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeHalfBlock:
		return "halfblock"
	case ModeFullColor:
		return "fullcolor"
	default:
		return "unknown"
	}
}

// ParseMode parses a string into a Mode value
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "halfblock", "half-block", "half", "":
		return ModeHalfBlock, nil
	case "fullcolor", "full-color", "full":
		return ModeFullColor, nil
	default:
		return ModeHalfBlock, fmt.Errorf("unknown render mode: %s", s)
	}
}

// Modes lists the accepted mode names, for flag help and completion
func Modes() []string {
	return []string{ModeHalfBlock.String(), ModeFullColor.String()}
}
