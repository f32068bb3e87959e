// Package nonogram models nonogram (picross) grids and derives their clues.
//
// # Overview
//
// A nonogram is a rectangular grid of binary cells. The puzzle shows only
// the clues: for every row and column, the lengths of the maximal runs of
// filled cells in the order they appear. This package provides the grid
// model and the clue derivation.
//
// # Hints
//
// [LineHints] run-length encodes a single line, keeping only runs of filled
// cells. [CalculateHints] applies it to every row of a [Grid] and to every
// row of its [Transpose], which are the original columns:
//
//	g := nonogram.Grid{
//	    {1, 1, 0},
//	    {0, 1, 1},
//	    {1, 0, 1},
//	}
//	hs, err := nonogram.CalculateHints(g)
//	// hs.Rows[0] == Hint{2}, hs.Cols[0] == Hint{1, 1}
//
// CalculateHints rejects ragged grids with an INVALID_SHAPE error instead of
// producing silently wrong column hints. Use [Grid.Validate] to check a grid
// up front.
//
// # Rendering
//
// [Render] draws a grid as block characters, two columns per cell so that
// cells look roughly square in a terminal. [Renderer] allows other glyphs.
//
// All functions in this package are pure: they never mutate their inputs
// and return freshly allocated results.
package nonogram
