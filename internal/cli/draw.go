package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/picross/pkg/pipeline"
)

// drawCommand creates the draw command, which renders every level of a stage.
func (c *CLI) drawCommand() *cobra.Command {
	var (
		titles bool
		glyphs glyphFlags
	)

	cmd := &cobra.Command{
		Use:   "draw [file]",
		Short: "Draw every level of a stage",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.settings(cmd, nil, &glyphs)
			if err != nil {
				return err
			}

			input, source, err := c.readInput(args)
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			s, err := c.newRunner().Parse(cmd.Context(), input)
			if err != nil {
				return err
			}
			if err := pipeline.DrawStage(c.Out, s, cfg.Renderer(), titles); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Drew %d levels from %s", len(s), source))
			return nil
		},
	}

	cmd.Flags().BoolVar(&titles, "titles", false, "print each level's key above its drawing")
	glyphs.register(cmd)

	return cmd
}
