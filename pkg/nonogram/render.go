package nonogram

import (
	"strings"
)

const (
	// DefaultFilled is the glyph for a filled cell.
	DefaultFilled = "██"
	// DefaultEmpty is the glyph for an empty cell.
	DefaultEmpty = "  "
)

// Renderer draws grids as text using one glyph per cell state.
type Renderer struct {
	Filled string
	Empty  string
}

// DefaultRenderer returns a Renderer using full block characters.
func DefaultRenderer() Renderer {
	return Renderer{Filled: DefaultFilled, Empty: DefaultEmpty}
}

// Render draws g with the default glyphs.
func Render(g Grid) string {
	return DefaultRenderer().Render(g)
}

// Render returns g drawn row by row. Every row ends with a newline and the
// drawing is followed by one blank line.
func (r Renderer) Render(g Grid) string {
	var b strings.Builder
	for _, row := range g {
		for _, c := range row {
			if c.IsFilled() {
				b.WriteString(r.Filled)
			} else {
				b.WriteString(r.Empty)
			}
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}
