package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/picross/pkg/nonogram"
	"github.com/matzehuels/picross/pkg/observability"
	"github.com/matzehuels/picross/pkg/stage"
)

// Runner executes pipeline stages with logging and observability hooks.
// It holds no per-run state, so one Runner may serve several runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete parse → select → render → hints pipeline on a
// fully buffered stage document.
func (r *Runner) Execute(ctx context.Context, input []byte, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	parseStart := time.Now()
	s, err := r.Parse(ctx, input)
	if err != nil {
		return nil, err
	}

	result := &Result{Level: opts.Level}
	result.Stats.Levels = len(s)
	result.Stats.ParseTime = time.Since(parseStart)

	g, err := r.Select(ctx, s, opts.Level)
	if err != nil {
		return nil, err
	}
	result.Grid = g

	hintStart := time.Now()
	hs, err := r.Hints(ctx, opts.Level, g)
	if err != nil {
		return nil, err
	}
	result.Hints = hs
	result.Stats.HintTime = time.Since(hintStart)

	result.Drawing = opts.Renderer.Render(g)
	return result, nil
}

// Parse decodes and validates a stage document.
func (r *Runner) Parse(ctx context.Context, input []byte) (stage.Stage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, len(input))

	start := time.Now()
	s, err := stage.Parse(input)
	hooks.OnParseComplete(ctx, len(s), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("parsed stage", "levels", len(s), "bytes", len(input), "duration", time.Since(start))
	return s, nil
}

// Select looks up level key in s.
func (r *Runner) Select(ctx context.Context, s stage.Stage, key string) (nonogram.Grid, error) {
	g, err := s.Level(key)
	observability.Pipeline().OnSelect(ctx, key, err == nil)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("selected level", "level", key, "rows", g.Rows(), "cols", g.Cols())
	return g, nil
}

// Hints validates g and derives its clues. key only labels log output and
// hook events.
func (r *Runner) Hints(ctx context.Context, key string, g nonogram.Grid) (nonogram.HintSet, error) {
	start := time.Now()
	hs, err := nonogram.CalculateHints(g)
	observability.Pipeline().OnHintsComplete(ctx, key, len(hs.Rows), len(hs.Cols), time.Since(start), err)
	if err != nil {
		r.Logger.Debug("hint calculation failed", "level", key, "err", err)
		return nonogram.HintSet{}, err
	}

	r.Logger.Debug("calculated hints", "level", key, "rows", len(hs.Rows), "cols", len(hs.Cols))
	return hs, nil
}
