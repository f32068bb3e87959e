package nonogram

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/matzehuels/picross/pkg/errors"
)

func TestLineHints(t *testing.T) {
	tests := []struct {
		name string
		line Line
		want Hint
	}{
		{"empty line", Line{}, Hint{}},
		{"nil line", nil, Hint{}},
		{"all empty", Line{0, 0, 0}, Hint{}},
		{"all filled", Line{1, 1, 1}, Hint{3}},
		{"run then single", Line{1, 1, 0, 1}, Hint{2, 1}},
		{"alternating", Line{1, 0, 1, 0, 1}, Hint{1, 1, 1}},
		{"leading and trailing gaps", Line{0, 0, 1, 1, 0, 0}, Hint{2}},
		{"wide gaps", Line{1, 0, 0, 0, 1, 1}, Hint{1, 2}},
		{"single filled", Line{1}, Hint{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LineHints(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LineHints(%v) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestLineHintsProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 500; n++ {
		line := make(Line, rng.Intn(20))
		filled, runs := 0, 0
		for i := range line {
			if rng.Intn(2) == 1 {
				line[i] = Filled
				filled++
				if i == 0 || line[i-1] == Empty {
					runs++
				}
			}
		}

		got := LineHints(line)
		for _, v := range got {
			if v <= 0 {
				t.Fatalf("LineHints(%v) = %v, contains non-positive entry", line, got)
			}
		}
		if got.Sum() != filled {
			t.Fatalf("LineHints(%v) sums to %d, want %d", line, got.Sum(), filled)
		}
		if len(got) != runs {
			t.Fatalf("LineHints(%v) has %d entries, want %d", line, len(got), runs)
		}
	}
}

func TestCalculateHints(t *testing.T) {
	g := Grid{
		{1, 1, 0},
		{0, 1, 1},
		{1, 0, 1},
	}

	hs, err := CalculateHints(g)
	if err != nil {
		t.Fatalf("CalculateHints() error = %v", err)
	}

	wantRows := []Hint{{2}, {2}, {1, 1}}
	wantCols := []Hint{{1, 1}, {2}, {2}}
	if !reflect.DeepEqual(hs.Rows, wantRows) {
		t.Errorf("Rows = %v, want %v", hs.Rows, wantRows)
	}
	if !reflect.DeepEqual(hs.Cols, wantCols) {
		t.Errorf("Cols = %v, want %v", hs.Cols, wantCols)
	}

	again, _ := CalculateHints(g)
	if !reflect.DeepEqual(hs, again) {
		t.Error("CalculateHints should be deterministic")
	}
}

func TestCalculateHintsDimensions(t *testing.T) {
	tests := []struct {
		name       string
		grid       Grid
		rows, cols int
	}{
		{"empty", Grid{}, 0, 0},
		{"zero-width rows", Grid{{}, {}}, 2, 0},
		{"wide", Grid{{1, 0, 1, 1, 0}}, 1, 5},
		{"tall", Grid{{1}, {0}, {1}, {1}}, 4, 1},
		{"rectangle", Grid{{1, 0, 1}, {0, 0, 0}}, 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hs, err := CalculateHints(tt.grid)
			if err != nil {
				t.Fatalf("CalculateHints() error = %v", err)
			}
			if len(hs.Rows) != tt.rows {
				t.Errorf("len(Rows) = %d, want %d", len(hs.Rows), tt.rows)
			}
			if len(hs.Cols) != tt.cols {
				t.Errorf("len(Cols) = %d, want %d", len(hs.Cols), tt.cols)
			}
		})
	}
}

func TestCalculateHintsRagged(t *testing.T) {
	g := Grid{
		{1, 1, 0},
		{0, 1},
	}

	_, err := CalculateHints(g)
	if err == nil {
		t.Fatal("CalculateHints() error = nil, want INVALID_SHAPE")
	}
	if !errors.Is(err, errors.ErrCodeInvalidShape) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidShape)
	}
}

func TestHintSetAccessors(t *testing.T) {
	hs := HintSet{Rows: []Hint{{2}}, Cols: []Hint{{1, 1}}}

	if got := hs.Row(0); !reflect.DeepEqual(got, Hint{2}) {
		t.Errorf("Row(0) = %v, want [2]", got)
	}
	if got := hs.Col(0); !reflect.DeepEqual(got, Hint{1, 1}) {
		t.Errorf("Col(0) = %v, want [1 1]", got)
	}
	if got := hs.Row(5); len(got) != 0 || got == nil {
		t.Errorf("Row(5) = %#v, want empty non-nil hint", got)
	}
	if got := (HintSet{}).Col(0); len(got) != 0 {
		t.Errorf("Col(0) on empty set = %v, want empty", got)
	}
}
