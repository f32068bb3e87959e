package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/picross/pkg/config"
)

// configCommand creates the config inspection command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect picross configuration",
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath
			if path == "" {
				p, err := config.Path()
				if err != nil {
					return fmt.Errorf("get config path: %w", err)
				}
				path = p
			}
			fmt.Fprintln(c.Out, path)

			if _, err := os.Stat(path); os.IsNotExist(err) {
				printDetail(c.Err, "File does not exist; built-in defaults apply")
			}
			return nil
		},
	}
}

// configShowCommand creates the "config show" subcommand, which prints the
// effective settings as TOML.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			if err := toml.NewEncoder(c.Out).Encode(cfg); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}

			if v := os.Getenv(config.EnvLevel); v != "" {
				printKeyValue(c.Err, config.EnvLevel, v)
			}
			printSuccess(c.Err, "Configuration is valid")
			return nil
		},
	}
}
