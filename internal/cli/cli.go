// Package cli implements the picross command-line interface.
//
// This package provides commands for inspecting picross stages: drawing
// levels as block art, deriving their row and column hints, listing and
// browsing the levels of a stage. The CLI is built using cobra and logs via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - hints: Draw one level and dump its hints
//   - draw: Draw every level of a stage
//   - levels: List the levels of a stage
//   - browse: Pick a level interactively
//   - config: Show the config file location and effective settings
//
// # Input
//
// Commands read a stage from the file named by their argument, or from
// standard input when the argument is absent or "-". Input is read to the
// end before parsing starts.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Logs and
// status lines go to stderr; stdout carries only drawings and hint dumps.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/picross/pkg/buildinfo"
	"github.com/matzehuels/picross/pkg/config"
	"github.com/matzehuels/picross/pkg/pipeline"
	"github.com/matzehuels/picross/pkg/stage"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "picross"

// stdinArg names standard input explicitly on the command line.
const stdinArg = "-"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	In  io.Reader // stage input when no file is named
	Out io.Writer // drawings and hint dumps
	Err io.Writer // status lines

	configPath string
}

// New creates a new CLI instance whose logger and status lines write to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		In:     os.Stdin,
		Out:    os.Stdout,
		Err:    w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Picross draws nonogram levels and computes their hints",
		Long:          `Picross reads a stage of nonogram (picross) levels, draws them as block art and computes the row and column hints that define each puzzle.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/picross/config.toml)")

	// Register all subcommands
	root.AddCommand(c.hintsCommand())
	root.AddCommand(c.drawCommand())
	root.AddCommand(c.levelsCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Settings
// =============================================================================

// glyphFlags are the rendering flags shared by drawing commands.
type glyphFlags struct {
	filled string
	empty  string
}

func (g *glyphFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&g.filled, "filled", "", "glyph for filled cells (default from config)")
	cmd.Flags().StringVar(&g.empty, "empty", "", "glyph for empty cells (default from config)")
}

// settings resolves the effective config: file and environment from
// config.Read, then any flags the user set explicitly on cmd. The result is
// validated once, after the flags apply.
func (c *CLI) settings(cmd *cobra.Command, level *string, glyphs *glyphFlags) (config.Config, error) {
	cfg, err := config.Read(c.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if level != nil && flags.Changed("level") {
		cfg.Level = *level
	}
	if glyphs != nil {
		if flags.Changed("filled") {
			cfg.Glyphs.Filled = glyphs.filled
		}
		if flags.Changed("empty") {
			cfg.Glyphs.Empty = glyphs.empty
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	c.Logger.Debug("resolved settings", "level", cfg.Level, "filled", cfg.Glyphs.Filled, "empty", cfg.Glyphs.Empty)
	return cfg, nil
}

// =============================================================================
// Input
// =============================================================================

// readInput returns the complete stage document named by args: the file in
// args[0], or c.In when there is no argument or it is "-".
func (c *CLI) readInput(args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == stdinArg {
		data, err := stage.ReadAll(c.In)
		if err != nil {
			return nil, "", err
		}
		return data, "stdin", nil
	}

	data, err := stage.ReadBytes(args[0])
	if err != nil {
		return nil, "", err
	}
	return data, args[0], nil
}
