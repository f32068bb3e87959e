package nonogram

import (
	"github.com/matzehuels/picross/pkg/errors"
)

// Cell is a single grid square.
type Cell uint8

const (
	Empty  Cell = 0
	Filled Cell = 1
)

// IsFilled reports whether c is a filled cell.
func (c Cell) IsFilled() bool { return c == Filled }

// Line is one row or column of a grid.
type Line []Cell

// Grid is an ordered sequence of rows. Well-formed grids are rectangular;
// see [Grid.Validate].
type Grid []Line

// Rows returns the number of rows in g.
func (g Grid) Rows() int { return len(g) }

// Cols returns the width of g, taken from its first row.
// An empty grid has zero columns.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// FilledCount returns the number of filled cells in g.
func (g Grid) FilledCount() int {
	n := 0
	for _, row := range g {
		for _, c := range row {
			if c.IsFilled() {
				n++
			}
		}
	}
	return n
}

// Validate checks that every row of g has the same length as row 0.
// The returned error has code INVALID_SHAPE and wraps an [errors.ShapeError]
// describing the first offending row.
func (g Grid) Validate() error {
	want := g.Cols()
	for i, row := range g {
		if len(row) != want {
			return errors.Wrap(errors.ErrCodeInvalidShape,
				&errors.ShapeError{Row: i, Want: want, Got: len(row)},
				"grid is not rectangular")
		}
	}
	return nil
}

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = append(Line(nil), row...)
	}
	return out
}

// Equal reports whether g and other have identical shape and cells.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if len(g[i]) != len(other[i]) {
			return false
		}
		for j := range g[i] {
			if g[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Transpose returns a new grid with rows and columns swapped, so that
// out[j][i] == g[i][j].
//
// The width of g is taken from its first row. If g is ragged, cells missing
// from shorter rows read as Empty and cells past the first row's width are
// dropped; call [Grid.Validate] first when that matters. A grid with no rows
// transposes to an empty grid.
func Transpose(g Grid) Grid {
	if len(g) == 0 {
		return Grid{}
	}
	rows, cols := len(g), g.Cols()
	out := make(Grid, cols)
	for j := range out {
		out[j] = make(Line, rows)
		for i := 0; i < rows; i++ {
			if j < len(g[i]) {
				out[j][i] = g[i][j]
			}
		}
	}
	return out
}
