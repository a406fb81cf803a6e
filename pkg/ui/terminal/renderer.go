// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/arthur-debert/pokedex/pkg/logging"
	"github.com/arthur-debert/pokedex/pkg/output/styles"
	"github.com/arthur-debert/pokedex/pkg/types"
)

// Renderer draws a pokemon as a bordered table: a title row, a metadata
// row and, when art was rendered, a full-width art row.
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	log := logging.GetLogger("ui.terminal")
	log.Debug().
		Str("colorProfile", fmt.Sprintf("%v", lipgloss.ColorProfile())).
		Msg("Creating terminal renderer")

	return &Renderer{output: w}, nil
}

// RenderEntry renders the table for one pokemon
func (r *Renderer) RenderEntry(entry *types.Entry) error {
	_, err := fmt.Fprintln(r.output, Table(entry))
	return err
}

// RenderError renders an error with the Error style
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintln(r.output, styles.GetStyle("Error").Render("Error: "+err.Error()))
	return err2
}

// Table lays out the entry as three stacked blocks of equal width that
// share their borders, so they read as a single table.
func Table(entry *types.Entry) string {
	p := entry.Pokemon

	title := cases.Upper(language.Und).String(p.Name)
	titleStyle := styles.GetStyle("Title")
	artStyle := styles.GetStyle("Art")
	art := strings.Join(entry.Art, "\n")

	cells := MetaCells(p)
	width := lipgloss.Width(metaTable(cells, entry.HasArt()))
	width = max(width, lipgloss.Width(titleStyle.Render(title))+2)
	if entry.HasArt() {
		width = max(width, lipgloss.Width(artStyle.Render(art))+2)
	}

	// Widen the last column until the metadata row spans the table.
	if extra := width - lipgloss.Width(metaTable(cells, entry.HasArt())); extra > 0 {
		cells[len(cells)-1] += strings.Repeat(" ", extra)
	}

	borderColor := styles.Color("border")
	blocks := []string{
		titleStyle.
			Width(width-2).
			Border(lipgloss.NormalBorder(), true, true, false, true).
			BorderForeground(borderColor).
			Render(title),
		metaTable(cells, entry.HasArt()),
	}
	if entry.HasArt() {
		blocks = append(blocks, artStyle.
			Width(width-2).
			Border(lipgloss.NormalBorder(), false, true, true, true).
			BorderForeground(borderColor).
			Render(art))
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// MetaCells returns the metadata row: id, weight, height and, when the
// pokemon has any, its comma-joined types.
func MetaCells(p *types.Pokemon) []string {
	cells := []string{
		fmt.Sprintf("# %d", p.ID),
		p.FormatWeight(),
		p.FormatHeight(),
	}
	if len(p.Types) > 0 {
		cells = append(cells, p.JoinedTypes())
	}
	return cells
}

// metaTable renders the metadata row. Its top corners join the title box
// and, when art follows, its bottom corners join the art box.
func metaTable(cells []string, joinBelow bool) string {
	border := lipgloss.Border{
		Top:          "─",
		Bottom:       "─",
		Left:         "│",
		Right:        "│",
		TopLeft:      "├",
		TopRight:     "┤",
		BottomLeft:   "└",
		BottomRight:  "┘",
		MiddleLeft:   "├",
		MiddleRight:  "┤",
		Middle:       "┼",
		MiddleTop:    "┬",
		MiddleBottom: "┴",
	}
	if joinBelow {
		border.BottomLeft = "├"
		border.BottomRight = "┤"
	}

	cellStyle := styles.GetStyle("Cell")
	idStyle := cellStyle.Inherit(styles.GetStyle("Id"))
	typesStyle := cellStyle.Inherit(styles.GetStyle("Types"))
	last := len(cells) - 1

	t := table.New().
		Border(border).
		BorderStyle(styles.GetStyle("Border")).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case col == 0:
				return idStyle
			case col == 3 && col == last:
				return typesStyle
			default:
				return cellStyle
			}
		}).
		Row(cells...)

	return t.Render()
}
