// Package config loads picross settings from a TOML file and the environment.
//
// Settings are resolved in this order, later sources winning:
//
//  1. Built-in defaults ([Default])
//  2. The config file, $XDG_CONFIG_HOME/picross/config.toml by default
//  3. Environment variables (PICROSS_LEVEL)
//  4. Command-line flags, applied by the CLI
//
// Example file:
//
//	level = "101"
//
//	[glyphs]
//	filled = "██"
//	empty  = "  "
package config

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/picross/pkg/errors"
	"github.com/matzehuels/picross/pkg/nonogram"
)

const (
	appName = "picross"

	// DefaultLevel is the level selected when nothing else is configured.
	DefaultLevel = "101"

	// EnvLevel overrides the selected level.
	EnvLevel = "PICROSS_LEVEL"

	// EnvConfig overrides the config file location.
	EnvConfig = "PICROSS_CONFIG"
)

// Config holds the effective settings.
type Config struct {
	Level  string `toml:"level"`
	Glyphs Glyphs `toml:"glyphs"`
}

// Glyphs are the strings drawn for each cell state.
type Glyphs struct {
	Filled string `toml:"filled"`
	Empty  string `toml:"empty"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Level: DefaultLevel,
		Glyphs: Glyphs{
			Filled: nonogram.DefaultFilled,
			Empty:  nonogram.DefaultEmpty,
		},
	}
}

// Renderer returns a grid renderer using the configured glyphs.
func (c Config) Renderer() nonogram.Renderer {
	return nonogram.Renderer{Filled: c.Glyphs.Filled, Empty: c.Glyphs.Empty}
}

// Validate checks the level key and the glyph pair.
// Both glyphs must be non-empty and the same width so that columns line up.
func (c Config) Validate() error {
	if err := errors.ValidateLevelKey(c.Level); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "level")
	}
	if c.Glyphs.Filled == "" || c.Glyphs.Empty == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "glyphs cannot be empty")
	}
	fw, ew := utf8.RuneCountInString(c.Glyphs.Filled), utf8.RuneCountInString(c.Glyphs.Empty)
	if fw != ew {
		return errors.New(errors.ErrCodeInvalidConfig,
			"glyphs must have equal width (filled %q is %d, empty %q is %d)", c.Glyphs.Filled, fw, c.Glyphs.Empty, ew)
	}
	return nil
}

// Path returns the config file location: $PICROSS_CONFIG if set, otherwise
// the XDG config directory (~/.config/picross/config.toml).
func Path() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load resolves the settings like [Read] and validates the result.
func Load(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Read resolves the settings from defaults, the config file and the
// environment without validating them, so callers can layer further
// overrides first. An empty path means the default location, which may be
// absent. An explicit path must exist.
func Read(path string) (Config, error) {
	explicit := path != "" || os.Getenv(EnvConfig) != ""
	if path == "" {
		// Without a home directory there is no default file; run on defaults.
		path, _ = Path()
	}

	cfg := Default()
	if path != "" {
		if err := decodeFile(path, &cfg, explicit); err != nil {
			return Config{}, err
		}
	}

	if v := os.Getenv(EnvLevel); v != "" {
		cfg.Level = v
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config, required bool) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			if required {
				return errors.New(errors.ErrCodeFileNotFound, "config file %s does not exist", path)
			}
			return nil
		}
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}
