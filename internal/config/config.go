// Package config handles configuration loading from TOML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config is the root configuration structure.
type Config struct {
	UI      UIConfig      `toml:"ui"`
	History HistoryConfig `toml:"history"`
	Finder  FinderConfig  `toml:"finder"`
	Log     LogConfig     `toml:"log"`

	// Set by Load. They are reported once logging is configured.
	Source  string   `toml:"-"` // file actually read; empty when defaults were used
	Unknown []string `toml:"-"` // keys present in the file but not understood
}

// UIConfig holds user-interface settings.
type UIConfig struct {
	// Theme is a Chroma style name. UI chrome colors are derived from it via
	// palette.FromTheme. Defaults to "vulcan" if unset.
	Theme         string `toml:"theme"`
	HideScrollbar bool   `toml:"hide_scrollbar"`
}

// ThemeOrDefault returns the configured theme or "vulcan" if unset.
func (u UIConfig) ThemeOrDefault() string {
	if u.Theme == "" {
		return "vulcan"
	}
	return u.Theme
}

// HistoryConfig controls the recent-files database.
type HistoryConfig struct {
	Disabled  bool   `toml:"disabled"`
	Path      string `toml:"path"` // defaults to <data dir>/history.db
	MaxRecent int    `toml:"max_recent"`
}

// MaxRecentOrDefault returns the configured limit or 20 if unset.
func (h HistoryConfig) MaxRecentOrDefault() int {
	if h.MaxRecent <= 0 {
		return 20
	}
	return h.MaxRecent
}

// FinderConfig controls the "edit an existing text" file picker.
type FinderConfig struct {
	Root       string `toml:"root"` // defaults to the working directory
	MaxResults int    `toml:"max_results"`
}

// MaxResultsOrDefault returns the configured limit or 50 if unset.
func (f FinderConfig) MaxResultsOrDefault() int {
	if f.MaxResults <= 0 {
		return 50
	}
	return f.MaxResults
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // defaults to <data dir>/scribe.log
}

// LevelOrDefault returns the configured level or "info" if unset.
func (l LogConfig) LevelOrDefault() string {
	if l.Level == "" {
		return "info"
	}
	return l.Level
}

// Load reads configuration from a TOML file and applies environment variable
// overrides. A missing file is not an error: defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		meta, err := toml.DecodeFile(path, cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to parse config: %w", err)
		default:
			cfg.Source = path
			for _, key := range meta.Undecoded() {
				cfg.Unknown = append(cfg.Unknown, key.String())
			}
		}
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error

	if _, err := zerolog.ParseLevel(c.Log.LevelOrDefault()); err != nil {
		errs = append(errs, fmt.Errorf("log.level=%q is invalid: %v", c.Log.Level, err))
	}
	if c.History.MaxRecent < 0 {
		errs = append(errs, fmt.Errorf("history.max_recent=%d must not be negative", c.History.MaxRecent))
	}
	if c.Finder.MaxResults < 0 {
		errs = append(errs, fmt.Errorf("finder.max_results=%d must not be negative", c.Finder.MaxResults))
	}
	if c.Finder.Root != "" {
		if info, err := os.Stat(c.Finder.Root); err != nil || !info.IsDir() {
			errs = append(errs, fmt.Errorf("finder.root=%q is not a directory", c.Finder.Root))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	for _, setter := range []struct {
		env   string
		apply func(string)
	}{
		{"SCRIBE_THEME", func(v string) {
			if v != "" {
				cfg.UI.Theme = v
			}
		}},
		{"SCRIBE_LOG_LEVEL", func(v string) {
			if v != "" {
				cfg.Log.Level = v
			}
		}},
		{"SCRIBE_HISTORY", func(v string) {
			switch strings.ToLower(v) {
			case "off", "0", "false":
				cfg.History.Disabled = true
			case "on", "1", "true":
				cfg.History.Disabled = false
			}
		}},
	} {
		setter.apply(os.Getenv(setter.env))
	}
}

// DataDir returns the path to the scribe data directory (~/.config/scribe).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "scribe"), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}
	return dir, nil
}

// DefaultPath returns the config file location inside the data directory.
func DefaultPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LogLoad reports how the configuration was loaded. Call it after the
// logger is set up.
func (c *Config) LogLoad() {
	if c.Source == "" {
		log.Debug().Msg("no config file, using defaults")
		return
	}
	for _, key := range c.Unknown {
		log.Warn().Str("key", key).Str("path", c.Source).Msg("unknown config key")
	}
}

// Resolve fills in file locations that default to the data directory.
func (c *Config) Resolve(dataDir string) {
	if c.History.Path == "" {
		c.History.Path = filepath.Join(dataDir, "history.db")
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(dataDir, "scribe.log")
	}
}
