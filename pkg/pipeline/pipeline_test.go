package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/picross/pkg/errors"
	"github.com/matzehuels/picross/pkg/nonogram"
	"github.com/matzehuels/picross/pkg/observability"
	"github.com/matzehuels/picross/pkg/stage"
)

const sampleStage = `{"101": [[1,1,0],[0,1,1],[1,0,1]], ragged: [[1,1],[1]], blank: []}`

func newTestRunner() *Runner {
	return NewRunner(log.New(io.Discard))
}

func TestExecute(t *testing.T) {
	res, err := newTestRunner().Execute(context.Background(), []byte(sampleStage), Options{Level: "101"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if res.Level != "101" {
		t.Errorf("Level = %q, want %q", res.Level, "101")
	}
	if res.Stats.Levels != 3 {
		t.Errorf("Stats.Levels = %d, want 3", res.Stats.Levels)
	}
	if got := res.Hints.Row(0); !reflect.DeepEqual(got, nonogram.Hint{2}) {
		t.Errorf("row 0 hint = %v, want [2]", got)
	}
	if got := res.Hints.Col(0); !reflect.DeepEqual(got, nonogram.Hint{1, 1}) {
		t.Errorf("col 0 hint = %v, want [1 1]", got)
	}

	firstRow := strings.SplitN(res.Drawing, "\n", 2)[0]
	if firstRow != "████  " {
		t.Errorf("first drawn row = %q, want %q", firstRow, "████  ")
	}
	if !strings.HasSuffix(res.Drawing, "\n\n") {
		t.Errorf("Drawing should end with a blank line, got %q", res.Drawing)
	}
}

func TestExecuteErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		level string
		code  errors.Code
	}{
		{"missing level", sampleStage, "999", errors.ErrCodeLevelNotFound},
		{"ragged level", sampleStage, "ragged", errors.ErrCodeInvalidShape},
		{"bad syntax", `{101: [[1,}`, "101", errors.ErrCodeParse},
		{"bad cell", `{101: [[7]]}`, "101", errors.ErrCodeInvalidCell},
		{"empty key absent", sampleStage, "", errors.ErrCodeLevelNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := newTestRunner().Execute(context.Background(), []byte(tt.input), Options{Level: tt.level})
			if err == nil {
				t.Fatalf("Execute() error = nil, want %s", tt.code)
			}
			if res != nil {
				t.Errorf("Execute() result = %+v, want nil on error", res)
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v (err: %v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestExecuteUnusualKeys(t *testing.T) {
	input := []byte(`{"": [[1]], "tab\tkey": [[0, 1]]}`)

	tests := []struct {
		level string
		row1  nonogram.Hint
	}{
		{"", nonogram.Hint{1}},
		{"tab\tkey", nonogram.Hint{1}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.level), func(t *testing.T) {
			res, err := newTestRunner().Execute(context.Background(), input, Options{Level: tt.level})
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if res.Level != tt.level || !reflect.DeepEqual(res.Hints.Row(0), tt.row1) {
				t.Errorf("Level, Row(0) = %q, %v", res.Level, res.Hints.Row(0))
			}
		})
	}
}

func TestExecuteEmptyGrid(t *testing.T) {
	res, err := newTestRunner().Execute(context.Background(), []byte(sampleStage), Options{Level: "blank"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(res.Hints.Rows) != 0 || len(res.Hints.Cols) != 0 {
		t.Errorf("Hints = %+v, want empty", res.Hints)
	}
	if res.Drawing != "\n" {
		t.Errorf("Drawing = %q, want %q", res.Drawing, "\n")
	}
}

func TestExecuteCustomRenderer(t *testing.T) {
	opts := Options{Level: "101", Renderer: nonogram.Renderer{Filled: "#", Empty: "."}}
	res, err := newTestRunner().Execute(context.Background(), []byte(sampleStage), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if want := "##.\n.##\n#.#\n\n"; res.Drawing != want {
		t.Errorf("Drawing = %q, want %q", res.Drawing, want)
	}
}

func TestExecuteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestRunner().Execute(ctx, []byte(sampleStage), Options{Level: "101"})
	if err != context.Canceled {
		t.Errorf("Execute() error = %v, want context.Canceled", err)
	}
}

func TestRunnerLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}))

	if _, err := r.Execute(context.Background(), []byte(sampleStage), Options{Level: "101"}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, msg := range []string{"parsed stage", "selected level", "calculated hints"} {
		if !strings.Contains(buf.String(), msg) {
			t.Errorf("log output should contain %q, got:\n%s", msg, buf.String())
		}
	}
}

func TestNewRunnerDefaultLogger(t *testing.T) {
	if NewRunner(nil).Logger == nil {
		t.Error("NewRunner(nil) should fall back to the default logger")
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	events []string
}

func (h *recordingHooks) OnParseStart(context.Context, int) {
	h.events = append(h.events, "parse-start")
}

func (h *recordingHooks) OnParseComplete(_ context.Context, levels int, _ time.Duration, err error) {
	h.events = append(h.events, "parse-complete")
}

func (h *recordingHooks) OnSelect(_ context.Context, key string, found bool) {
	if found {
		h.events = append(h.events, "select:"+key)
	} else {
		h.events = append(h.events, "missing:"+key)
	}
}

func (h *recordingHooks) OnHintsComplete(context.Context, string, int, int, time.Duration, error) {
	h.events = append(h.events, "hints")
}

func TestExecuteEmitsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	t.Cleanup(observability.Reset)

	r := newTestRunner()
	if _, err := r.Execute(context.Background(), []byte(sampleStage), Options{Level: "101"}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	_, _ = r.Execute(context.Background(), []byte(sampleStage), Options{Level: "999"})

	want := []string{
		"parse-start", "parse-complete", "select:101", "hints",
		"parse-start", "parse-complete", "missing:999",
	}
	if !reflect.DeepEqual(hooks.events, want) {
		t.Errorf("events = %v, want %v", hooks.events, want)
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"text", false},
		{"json", false},
		{"JSON", true}, // case-sensitive
		{"yaml", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestWriteHints(t *testing.T) {
	hs := nonogram.HintSet{
		Rows: []nonogram.Hint{{2}, {2}, {1, 1}},
		Cols: []nonogram.Hint{{1, 1}, {2}, {2}},
	}

	tests := []struct {
		name   string
		hs     nonogram.HintSet
		format string
		all    bool
		want   string
	}{
		{"text first", hs, FormatText, false, "{ row1: [ 2 ], col1: [ 1, 1 ] }\n"},
		{"json first", hs, FormatJSON, false, `{"row1":[2],"col1":[1,1]}` + "\n"},
		{"text all", hs, FormatText, true, "{ rows: [ [ 2 ], [ 2 ], [ 1, 1 ] ], cols: [ [ 1, 1 ], [ 2 ], [ 2 ] ] }\n"},
		{"json all", hs, FormatJSON, true, `{"rows":[[2],[2],[1,1]],"cols":[[1,1],[2],[2]]}` + "\n"},
		{"text empty", nonogram.HintSet{}, FormatText, false, "{ row1: [], col1: [] }\n"},
		{"json empty", nonogram.HintSet{}, FormatJSON, false, `{"row1":[],"col1":[]}` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteHints(&buf, tt.hs, tt.format, tt.all); err != nil {
				t.Fatalf("WriteHints() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("WriteHints() = %q, want %q", buf.String(), tt.want)
			}
		})
	}

	if err := WriteHints(io.Discard, hs, "xml", false); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("WriteHints(xml) error = %v, want %v", err, errors.ErrCodeInvalidFormat)
	}
}

func TestDrawStage(t *testing.T) {
	s := stage.Stage{
		"2": nonogram.Grid{{0, 1}},
		"1": nonogram.Grid{{1, 0}},
	}
	r := nonogram.Renderer{Filled: "#", Empty: "."}

	var buf bytes.Buffer
	if err := DrawStage(&buf, s, r, false); err != nil {
		t.Fatalf("DrawStage() error = %v", err)
	}
	if want := "#.\n\n\n.#\n\n\n"; buf.String() != want {
		t.Errorf("DrawStage() = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	if err := DrawStage(&buf, s, r, true); err != nil {
		t.Fatalf("DrawStage() error = %v", err)
	}
	if want := "1:\n#.\n\n\n2:\n.#\n\n\n"; buf.String() != want {
		t.Errorf("DrawStage(titles) = %q, want %q", buf.String(), want)
	}
}
