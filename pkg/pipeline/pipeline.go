// Package pipeline provides the parse → select → hints pipeline for picross.
//
// The CLI commands share this package so that every entry point validates
// input the same way and reports the same errors before printing anything.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Parse: Decode the JSON5 stage document and validate its schema
//  2. Select: Look up the requested level (LEVEL_NOT_FOUND when absent)
//  3. Render: Draw the level as block characters
//  4. Hints: Derive row and column clues (INVALID_SHAPE for ragged grids)
//
// Nothing is written until all four stages have succeeded, so a failed run
// produces no partial output.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, input, pipeline.Options{Level: "101"})
//	if err != nil {
//	    return err
//	}
//	fmt.Print(result.Drawing)
//	pipeline.WriteHints(os.Stdout, result.Hints, pipeline.FormatText, false)
package pipeline

import (
	"time"

	"github.com/matzehuels/picross/pkg/errors"
	"github.com/matzehuels/picross/pkg/nonogram"
)

// Format constants for hint output.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats lists the supported hint output formats.
var ValidFormats = []string{FormatText, FormatJSON}

// ValidateFormat checks that format is a supported hint output format.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, ValidFormats...)
}

// Options configures a pipeline run.
type Options struct {
	// Level is the stage key of the grid to process. Any key the stage
	// document can hold is accepted, including "".
	Level string

	// Renderer draws the selected grid. The zero value uses block glyphs.
	Renderer nonogram.Renderer
}

// Validate checks the options and fills in defaults.
func (o *Options) Validate() error {
	if o.Renderer == (nonogram.Renderer{}) {
		o.Renderer = nonogram.DefaultRenderer()
	}
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Level is the key of the selected grid.
	Level string

	// Grid is the selected grid.
	Grid nonogram.Grid

	// Drawing is the rendered grid, ending with a blank line.
	Drawing string

	// Hints are the row and column clues of Grid.
	Hints nonogram.HintSet

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Levels    int
	ParseTime time.Duration
	HintTime  time.Duration
}
