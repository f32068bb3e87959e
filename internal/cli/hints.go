package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/picross/pkg/config"
	"github.com/matzehuels/picross/pkg/pipeline"
)

// hintsOpts holds the command-line flags for the hints command.
type hintsOpts struct {
	level  string // stage key of the level to process
	format string // hint dump format: "text" or "json"
	all    bool   // dump every row and column hint instead of the first ones
	glyphs glyphFlags
}

// hintsCommand creates the hints command: draw one level, then dump its hints.
//
// Output on stdout is the drawing (ending with a blank line) followed by the
// hint dump. Nothing is printed if the input cannot be parsed, the level is
// missing or its grid is ragged.
func (c *CLI) hintsCommand() *cobra.Command {
	opts := hintsOpts{format: pipeline.FormatText}

	cmd := &cobra.Command{
		Use:   "hints [file]",
		Short: "Draw a level and print its row and column hints",
		Long: `Draw a level and print its row and column hints.

The stage is read from file, or from stdin when file is omitted or "-".
The level is chosen with --level, $PICROSS_LEVEL or the config file.`,
		Example: `  picross hints stage.json5 --level 101
  cat stage.json5 | picross hints -l heart --format json --all`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormat(opts.format); err != nil {
				return err
			}
			cfg, err := c.settings(cmd, &opts.level, &opts.glyphs)
			if err != nil {
				return err
			}
			return c.runHints(cmd.Context(), args, cfg, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.level, "level", "l", config.DefaultLevel, "level key to process")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "hint output format: text, json")
	cmd.Flags().BoolVar(&opts.all, "all", false, "print hints for every row and column")
	opts.glyphs.register(cmd)

	return cmd
}

func (c *CLI) runHints(ctx context.Context, args []string, cfg config.Config, opts *hintsOpts) error {
	input, source, err := c.readInput(args)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	res, err := c.newRunner().Execute(ctx, input, pipeline.Options{
		Level:    cfg.Level,
		Renderer: cfg.Renderer(),
	})
	if err != nil {
		return err
	}

	if err := writeResult(c.Out, res, opts.format, opts.all); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Calculated hints for level %s from %s", res.Level, source))
	return nil
}

// writeResult prints the drawing followed by the hint dump.
func writeResult(w io.Writer, res *pipeline.Result, format string, all bool) error {
	if _, err := io.WriteString(w, res.Drawing); err != nil {
		return err
	}
	return pipeline.WriteHints(w, res.Hints, format, all)
}
