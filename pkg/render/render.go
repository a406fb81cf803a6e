package render

import (
	"strconv"
	"strings"
)

// Glyphs and SGR fragments
const (
	UpperHalfBlock = "▀"
	LowerHalfBlock = "▄"

	FgPrefix = "\x1b[38;2;"
	BgPrefix = "\x1b[48;2;"
	Postfix  = "m"
	Reset    = "\x1b[0m"

	Blank = " "
)

// Grid is a read-only pixel source. Coordinates start at the top-left corner
// and channel values are non-premultiplied.
type Grid interface {
	Width() int
	Height() int
	RGBA(x, y int) (r, g, b, a uint8)
}

// Pixel is one non-premultiplied RGBA sample
type Pixel struct {
	R, G, B, A uint8
}

// Transparent is the pixel used for rows past the bottom of the grid
var Transparent = Pixel{}

// Opaque reports whether the pixel has any coverage at all
func (p Pixel) Opaque() bool {
	return p.A != 0
}

func at(g Grid, x, y int) Pixel {
	if y >= g.Height() {
		return Transparent
	}
	r, gr, b, a := g.RGBA(x, y)
	return Pixel{R: r, G: gr, B: b, A: a}
}

// Art is rendered terminal art, one string per line without line breaks
type Art []string

// String joins the lines, terminating each with a newline
func (a Art) String() string {
	var sb strings.Builder
	for _, line := range a {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Block returns the lines joined by newlines with no trailing newline,
// the shape expected by layout libraries
func (a Art) Block() string {
	return strings.Join(a, "\n")
}

// Render draws the grid in the given mode
func Render(g Grid, mode Mode) Art {
	if mode == ModeFullColor {
		return FullColor(g)
	}
	return HalfBlock(g)
}

// HalfBlock renders two source rows per line. For an odd height the row
// below the last one is treated as fully transparent.
func HalfBlock(g Grid) Art {
	w, h := g.Width(), g.Height()
	art := make(Art, 0, (h+1)/2)

	for y := 0; y < h; y += 2 {
		var line strings.Builder
		for x := 0; x < w; x++ {
			line.WriteString(HalfBlockCell(at(g, x, y), at(g, x, y+1)))
		}
		art = append(art, line.String())
	}
	return art
}

// HalfBlockCell renders a vertically stacked pixel pair. The first matching
// rule wins:
//
//	both transparent  -> a bare space
//	upper transparent -> ▄ in the lower colour
//	lower transparent -> ▀ in the upper colour
//	both opaque       -> ▀, upper as foreground and lower as background
func HalfBlockCell(upper, lower Pixel) string {
	switch {
	case !upper.Opaque() && !lower.Opaque():
		return Blank
	case !upper.Opaque():
		return FgPrefix + rgb(lower) + Postfix + LowerHalfBlock + Reset
	case !lower.Opaque():
		return FgPrefix + rgb(upper) + Postfix + UpperHalfBlock + Reset
	default:
		return FgPrefix + rgb(upper) + Postfix + BgPrefix + rgb(lower) + Postfix + UpperHalfBlock + Reset
	}
}

// FullColor renders one source row per line and one pixel per cell
func FullColor(g Grid) Art {
	w, h := g.Width(), g.Height()
	art := make(Art, 0, h)

	for y := 0; y < h; y++ {
		var line strings.Builder
		for x := 0; x < w; x++ {
			line.WriteString(FullColorCell(at(g, x, y)))
		}
		art = append(art, line.String())
	}
	return art
}

// FullColorCell renders a single pixel as a space painted with its colour
func FullColorCell(p Pixel) string {
	if !p.Opaque() {
		return Blank
	}
	return BgPrefix + rgb(p) + Postfix + Blank + Reset
}

func rgb(p Pixel) string {
	b := make([]byte, 0, 11)
	b = strconv.AppendUint(b, uint64(p.R), 10)
	b = append(b, ';')
	b = strconv.AppendUint(b, uint64(p.G), 10)
	b = append(b, ';')
	b = strconv.AppendUint(b, uint64(p.B), 10)
	return string(b)
}
