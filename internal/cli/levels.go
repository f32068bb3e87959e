package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/picross/pkg/stage"
)

// levelsCommand creates the levels command, which lists the levels of a stage.
func (c *CLI) levelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "levels [file]",
		Short: "List the levels of a stage",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, source, err := c.readInput(args)
			if err != nil {
				return err
			}

			s, err := c.newRunner().Parse(cmd.Context(), input)
			if err != nil {
				return err
			}
			if len(s) == 0 {
				printWarning(c.Err, "Stage %s has no levels", source)
				return nil
			}

			fmt.Fprintln(c.Out, levelsTable(s))
			for _, key := range s.Keys() {
				if err := s[key].Validate(); err != nil {
					printWarning(c.Err, "Level %s is not rectangular; hints are unavailable", key)
				}
			}
			printDetail(c.Err, "%d levels from %s", len(s), source)
			return nil
		},
	}
}

// levelsTable renders one row per level: key, size, filled cell count and
// whether the grid is rectangular.
func levelsTable(s stage.Stage) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(s))
	for _, key := range s.Keys() {
		g := s[key]
		shape := "ok"
		if g.Validate() != nil {
			shape = "ragged"
		}
		rows = append(rows, []string{
			key,
			fmt.Sprintf("%dx%d", g.Rows(), g.Cols()),
			strconv.Itoa(g.FilledCount()),
			shape,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Level", "Size", "Filled", "Shape").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			if col == 3 && rows[row][3] != "ok" {
				return base.Foreground(colorYellow)
			}
			return base
		})

	return t.Render()
}
