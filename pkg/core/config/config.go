// ============================================================================
// mREPL - Line-oriented command shell engine
// ============================================================================
//
// Package:     config
// Description: Application configuration loaded from TOML or YAML files
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/mrepl/foundation/core/error"
)

// EnvConfig names the environment variable holding the config file path
const EnvConfig = "MREPL_CONFIG"

// ErrNoConfigFile is returned by LoadFromEnv when no config file exists
var ErrNoConfigFile = errors.New("no config file found")

// Config holds the complete application configuration
type Config struct {
	REPL    REPLConfig        `toml:"repl" yaml:"repl"`
	Log     LogConfig         `toml:"log" yaml:"log"`
	Aliases map[string]string `toml:"aliases" yaml:"aliases"`
}

// REPLConfig holds the settings of the command loop
type REPLConfig struct {
	Title       string `toml:"title" yaml:"title"`
	Prompt      string `toml:"prompt" yaml:"prompt"`
	StartupFile string `toml:"startup_file" yaml:"startup_file"`
	Debug       bool   `toml:"debug" yaml:"debug"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	File   string `toml:"file" yaml:"file"`
}

// Format is the encoding of a config file
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, mdwerror.Wrap(err, fmt.Sprintf("config file not found: %s", path)).
				WithCode(mdwerror.CodeConfigError).
				WithDetail("path", path)
		}
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeConfigError).
			WithDetail("path", path)
	}

	cfg, err := Parse(content, detectFormat(path))
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithDetail("path", path)
	}
	return cfg, nil
}

// Parse decodes content in the given format and applies defaults
func Parse(content []byte, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, err
		}
	default:
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			return nil, err
		}
	}

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in path fields
	cfg.expandEnvVars()

	return &cfg, nil
}

// LoadFromEnv loads configuration from the MREPL_CONFIG environment variable
// or the first existing default location
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		// Try default locations
		home, _ := os.UserHomeDir()
		defaultPaths := []string{
			"./mrepl.toml",
			"./mrepl.yaml",
			filepath.Join(home, ".config/mrepl/config.toml"),
			filepath.Join(home, ".config/mrepl/config.yaml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, fmt.Errorf("%w, set %s or create mrepl.toml", ErrNoConfigFile, EnvConfig)
	}

	return Load(path)
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "$ "
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Aliases == nil {
		c.Aliases = make(map[string]string)
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.REPL.StartupFile = os.ExpandEnv(c.REPL.StartupFile)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
