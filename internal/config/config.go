// Package config loads CLI defaults from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/mgpai22/webvtt/internal/logging"
)

// Output controls where derived files are written.
type Output struct {
	// Dir receives derived output files; empty keeps them next to the input.
	Dir string `toml:"dir"`
	// Overwrite allows replacing existing output files.
	Overwrite bool `toml:"overwrite"`
}

// Convert contains settings for SRT conversion.
type Convert struct {
	Concurrency int `toml:"concurrency"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values.
type Config struct {
	Output  Output  `toml:"output"`
	Convert Convert `toml:"convert"`
	Logging Logging `toml:"logging"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Convert: Convert{Concurrency: 4},
		Logging: Logging{Format: logging.FormatConsole, Level: "info"},
	}
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/webvtt/config.toml")
}

// Load locates, parses, and validates a configuration file. It returns the
// config, the resolved path and whether that file existed. A missing file
// yields the defaults.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if cfg.Output.Dir != "" {
		dir, err := expandPath(cfg.Output.Dir)
		if err != nil {
			return nil, "", false, err
		}
		cfg.Output.Dir = dir
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// Validate checks value ranges and names.
func (c *Config) Validate() error {
	if c.Convert.Concurrency <= 0 {
		return fmt.Errorf("convert.concurrency must be positive, got %d", c.Convert.Concurrency)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}
	if !logging.ValidFormat(c.Logging.Format) {
		return fmt.Errorf("logging.format %q must be console, json or auto", c.Logging.Format)
	}
	return nil
}

// OutputPath places a derived file name in Output.Dir when configured.
func (c *Config) OutputPath(derived string) string {
	if c.Output.Dir == "" {
		return derived
	}
	return filepath.Join(c.Output.Dir, filepath.Base(derived))
}

func resolveConfigPath(path string) (string, bool, error) {
	explicit := path != ""
	if !explicit {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", false, err
		}
		path = defaultPath
	}

	resolved, err := expandPath(path)
	if err != nil {
		return "", false, err
	}

	if _, err := os.Stat(resolved); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return "", false, fmt.Errorf("config file not found: %s", resolved)
			}
			return resolved, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	return resolved, true, nil
}

func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}
	return abs, nil
}
