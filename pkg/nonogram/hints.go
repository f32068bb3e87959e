package nonogram

// Hint is the clue for one line: the lengths of its maximal runs of
// filled cells, in order. A line without filled cells has an empty hint.
type Hint []int

// Sum returns the total number of filled cells described by h.
func (h Hint) Sum() int {
	n := 0
	for _, v := range h {
		n += v
	}
	return n
}

// HintSet holds the clues of a whole grid.
type HintSet struct {
	Rows []Hint `json:"rows"` // Indexed by row position
	Cols []Hint `json:"cols"` // Indexed by column position
}

// LineHints returns the run lengths of filled cells in line.
// Empty cells only separate runs and never contribute a value, so the
// result contains no zeros. An empty line yields an empty, non-nil hint.
func LineHints(line Line) Hint {
	hint := Hint{}
	run := 0
	for _, c := range line {
		if c.IsFilled() {
			run++
			continue
		}
		if run > 0 {
			hint = append(hint, run)
			run = 0
		}
	}
	if run > 0 {
		hint = append(hint, run)
	}
	return hint
}

// CalculateHints derives the row and column clues of g.
// Column j's hint is the hint of g's j-th column read top to bottom.
// Ragged grids are rejected with an INVALID_SHAPE error.
func CalculateHints(g Grid) (HintSet, error) {
	if err := g.Validate(); err != nil {
		return HintSet{}, err
	}
	return HintSet{
		Rows: linesHints(g),
		Cols: linesHints(Transpose(g)),
	}, nil
}

func linesHints(g Grid) []Hint {
	out := make([]Hint, len(g))
	for i, line := range g {
		out[i] = LineHints(line)
	}
	return out
}

// Row returns the hint for row i, or an empty hint if i is out of range.
func (hs HintSet) Row(i int) Hint { return hintAt(hs.Rows, i) }

// Col returns the hint for column j, or an empty hint if j is out of range.
func (hs HintSet) Col(j int) Hint { return hintAt(hs.Cols, j) }

func hintAt(hs []Hint, i int) Hint {
	if i < 0 || i >= len(hs) {
		return Hint{}
	}
	return hs[i]
}
