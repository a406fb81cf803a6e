package types

import (
	"fmt"
	"sort"
	"strings"
)

// Pokemon is the metadata record returned by the pokemon endpoint.
// Weight and height are stored in tenths, as the API reports them.
type Pokemon struct {
	ID      uint16     `json:"id"`
	Name    string     `json:"name"`
	Weight  uint16     `json:"weight"`
	Height  uint16     `json:"height"`
	Sprites Sprites    `json:"sprites"`
	Types   []TypeSlot `json:"types,omitempty"`
}

// Sprites holds the sprite URLs of a pokemon. Only the default front
// sprite is used.
type Sprites struct {
	FrontDefault string `json:"front_default"`
}

// TypeSlot is one entry of the ordered type list
type TypeSlot struct {
	Slot int          `json:"slot"`
	Type NamedAPIType `json:"type"`
}

// NamedAPIType is a type reference as served by the API
type NamedAPIType struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// WeightKg returns the weight in kilograms
func (p *Pokemon) WeightKg() float64 {
	return float64(p.Weight) / 10.0
}

// HeightM returns the height in meters
func (p *Pokemon) HeightM() float64 {
	return float64(p.Height) / 10.0
}

// FormatWeight renders the weight with one decimal and the kg suffix
func (p *Pokemon) FormatWeight() string {
	return fmt.Sprintf("%.1fkg", p.WeightKg())
}

// FormatHeight renders the height with one decimal and the m suffix
func (p *Pokemon) FormatHeight() string {
	return fmt.Sprintf("%.1fm", p.HeightM())
}

// TypeNames returns the type names ordered by slot
func (p *Pokemon) TypeNames() []string {
	slots := make([]TypeSlot, len(p.Types))
	copy(slots, p.Types)
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Slot < slots[j].Slot
	})

	names := make([]string, 0, len(slots))
	for _, s := range slots {
		names = append(names, s.Type.Name)
	}
	return names
}

// JoinedTypes returns the type names joined with ", "
func (p *Pokemon) JoinedTypes() string {
	return strings.Join(p.TypeNames(), ", ")
}
