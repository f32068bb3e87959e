package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/picross/pkg/nonogram"
	"github.com/matzehuels/picross/pkg/stage"
)

// firstHints is the default dump: the clues of row 0 and column 0.
type firstHints struct {
	Row1 nonogram.Hint `json:"row1"`
	Col1 nonogram.Hint `json:"col1"`
}

// WriteHints writes a hint dump to w.
//
// By default only the first row and first column are dumped, as
// { row1: [ 2 ], col1: [ 1, 1 ] } in text form or {"row1":[2],"col1":[1,1]}
// in JSON. With all set, every row and column hint is written under
// rows/cols. Text arrays are spaced the way Node's console.log prints them
// ("[ 1, 1 ]", "[]" when empty) but always stay on one line.
func WriteHints(w io.Writer, hs nonogram.HintSet, format string, all bool) error {
	if err := ValidateFormat(format); err != nil {
		return err
	}

	if format == FormatJSON {
		var v any = firstHints{Row1: hs.Row(0), Col1: hs.Col(0)}
		if all {
			v = hs
		}
		return json.NewEncoder(w).Encode(v)
	}

	var line string
	if all {
		line = fmt.Sprintf("{ rows: %s, cols: %s }", formatHintList(hs.Rows), formatHintList(hs.Cols))
	} else {
		line = fmt.Sprintf("{ row1: %s, col1: %s }", formatHint(hs.Row(0)), formatHint(hs.Col(0)))
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

func formatHint(h nonogram.Hint) string {
	parts := make([]string, len(h))
	for i, v := range h {
		parts[i] = strconv.Itoa(v)
	}
	return inspectArray(parts)
}

func formatHintList(hs []nonogram.Hint) string {
	parts := make([]string, len(hs))
	for i, h := range hs {
		parts[i] = formatHint(h)
	}
	return inspectArray(parts)
}

func inspectArray(parts []string) string {
	if len(parts) == 0 {
		return "[]"
	}
	return "[ " + strings.Join(parts, ", ") + " ]"
}

// DrawStage renders every level of s in stage order, each followed by a
// blank line. With titles set, each drawing is preceded by its key.
func DrawStage(w io.Writer, s stage.Stage, r nonogram.Renderer, titles bool) error {
	for _, key := range s.Keys() {
		if titles {
			if _, err := fmt.Fprintf(w, "%s:\n", key); err != nil {
				return err
			}
		}
		g, _ := s.Lookup(key)
		if _, err := io.WriteString(w, r.Render(g)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
