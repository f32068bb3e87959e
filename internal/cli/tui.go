package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/picross/pkg/errors"
	"github.com/matzehuels/picross/pkg/nonogram"
	"github.com/matzehuels/picross/pkg/pipeline"
	"github.com/matzehuels/picross/pkg/stage"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	previewStyle      = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// =============================================================================
// LevelListModel - Interactive level selection
// =============================================================================

// levelEntry is one level of the stage with its precomputed hints.
type levelEntry struct {
	Key   string
	Grid  nonogram.Grid
	Hints nonogram.HintSet
	Err   error // set when hints cannot be computed (ragged grid)
}

// LevelListModel is the bubbletea model for interactive level selection.
// The highlighted level is previewed next to the list.
type LevelListModel struct {
	Levels   []levelEntry
	Renderer nonogram.Renderer
	Cursor   int
	Selected string
	Chosen   bool // Selected is meaningful; "" is a valid level key
	Height   int
	Offset   int
}

// NewLevelListModel creates a level list over s in stage order.
func NewLevelListModel(s stage.Stage, r nonogram.Renderer) LevelListModel {
	levels := make([]levelEntry, 0, len(s))
	for _, key := range s.Keys() {
		g := s[key]
		hs, err := nonogram.CalculateHints(g)
		levels = append(levels, levelEntry{Key: key, Grid: g, Hints: hs, Err: err})
	}
	return LevelListModel{
		Levels:   levels,
		Renderer: r,
		Height:   15,
	}
}

func (m LevelListModel) Init() tea.Cmd {
	return nil
}

func (m LevelListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Levels)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Levels) == 0 || m.Levels[m.Cursor].Err != nil {
				return m, nil
			}
			m.Selected = m.Levels[m.Cursor].Key
			m.Chosen = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

func (m LevelListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Level"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	if len(m.Levels) == 0 {
		b.WriteString(listDimStyle.Render("  stage has no levels"))
		b.WriteString("\n")
		return b.String()
	}

	end := m.Offset + m.Height
	if end > len(m.Levels) {
		end = len(m.Levels)
	}

	var list strings.Builder
	for i := m.Offset; i < end; i++ {
		lv := m.Levels[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-12s %s", cursor, lv.Key, listDimStyle.Render(fmt.Sprintf("%dx%d", lv.Grid.Rows(), lv.Grid.Cols())))

		switch {
		case i == m.Cursor:
			list.WriteString(listSelectedStyle.Render(line))
		case lv.Err != nil:
			list.WriteString(listDimStyle.Render(line))
		default:
			list.WriteString(listNormalStyle.Render(line))
		}
		list.WriteString("\n")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list.String(), "  ", m.preview()))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Levels))))

	return b.String()
}

// preview draws the highlighted level with its hints.
func (m LevelListModel) preview() string {
	lv := m.Levels[m.Cursor]

	var b strings.Builder
	b.WriteString(strings.TrimRight(m.Renderer.Render(lv.Grid), "\n"))
	b.WriteString("\n\n")
	if lv.Err != nil {
		b.WriteString(StyleWarning.Render(errors.UserMessage(lv.Err)))
	} else {
		var dump strings.Builder
		_ = pipeline.WriteHints(&dump, lv.Hints, pipeline.FormatText, true)
		b.WriteString(StyleNumber.Render(strings.TrimRight(dump.String(), "\n")))
	}
	return previewStyle.Render(b.String())
}

// =============================================================================
// browse command
// =============================================================================

// browseCommand creates the browse command: pick a level interactively,
// then print it as the hints command would.
func (c *CLI) browseCommand() *cobra.Command {
	var (
		format string
		all    bool
		glyphs glyphFlags
	)

	cmd := &cobra.Command{
		Use:   "browse file",
		Short: "Pick a level interactively and print its hints",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormat(format); err != nil {
				return err
			}
			if args[0] == stdinArg {
				return errors.New(errors.ErrCodeInvalidInput, "browse needs a stage file; stdin is used for the keyboard")
			}
			cfg, err := c.settings(cmd, nil, &glyphs)
			if err != nil {
				return err
			}

			input, _, err := c.readInput(args)
			if err != nil {
				return err
			}
			runner := c.newRunner()
			s, err := runner.Parse(cmd.Context(), input)
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewLevelListModel(s, cfg.Renderer()), tea.WithOutput(os.Stderr), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "run level browser")
			}
			picked := final.(LevelListModel)
			if !picked.Chosen {
				printInfo(c.Err, "No level selected")
				return nil
			}

			res, err := runner.Execute(cmd.Context(), input, pipeline.Options{Level: picked.Selected, Renderer: cfg.Renderer()})
			if err != nil {
				return err
			}
			return writeResult(c.Out, res, format, all)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatText, "hint output format: text, json")
	cmd.Flags().BoolVar(&all, "all", false, "print hints for every row and column")
	glyphs.register(cmd)

	return cmd
}
