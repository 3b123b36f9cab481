// Package config resolves toplangs configuration from an optional TOML
// file and the environment into a plain value that the CLI passes down.
// Nothing below the entry point reads ambient state.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/toplangs/pkg/errors"
)

// TokenEnvVar is the environment variable consulted when no token is set
// by flag or config file.
const TokenEnvVar = "GITHUB_TOKEN"

// DefaultOutput is the artifact path relative to the working directory.
const DefaultOutput = "profile/top-langs.svg"

// Config holds the resolved scalar configuration for a run.
type Config struct {
	Token   string `toml:"token"`
	TopN    int    `toml:"top"`
	Output  string `toml:"output"`
	Title   string `toml:"title"`
	Width   int    `toml:"width"`
	Columns int    `toml:"columns"`
}

// DefaultPath returns the default config file location,
// ~/.config/toplangs/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "toplangs", "config.toml"), nil
}

// Load reads a Config from the TOML file at path. A missing file is not an
// error and yields the zero Config; a file that exists but does not parse
// is an INVALID_CONFIG error.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return cfg, nil
}

// ApplyEnv overlays the token from the environment. The environment beats
// the config file, so callers apply it after Load and before merging flags.
// An empty variable counts as unset. lookup is os.LookupEnv in production;
// tests inject their own.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(TokenEnvVar); ok && v != "" {
		c.Token = v
	}
}

// Merge overlays non-zero fields of other onto c and returns the result.
// Used to apply flag values over file values.
func (c Config) Merge(other Config) Config {
	if other.Token != "" {
		c.Token = other.Token
	}
	if other.TopN != 0 {
		c.TopN = other.TopN
	}
	if other.Output != "" {
		c.Output = other.Output
	}
	if other.Title != "" {
		c.Title = other.Title
	}
	if other.Width != 0 {
		c.Width = other.Width
	}
	if other.Columns != 0 {
		c.Columns = other.Columns
	}
	return c
}
