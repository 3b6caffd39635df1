// Package config loads the server's configuration: the Raindrop.io API
// credential plus endpoint and timeout knobs. Values come from an optional
// YAML file overlaid by environment variables; the environment always wins.
// Configuration is read once at startup and passed down by value.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	// EnvToken holds the Raindrop.io API token.
	EnvToken = "RAINDROP_TOKEN"
	// EnvBaseURL overrides the API endpoint, typically for testing.
	EnvBaseURL = "RAINDROP_BASE_URL"
)

const (
	configDirName  = "raindrop-mcp"
	configFileName = "config.yaml"

	defaultTimeoutSeconds = 30
)

// Config carries everything needed to construct the API client.
type Config struct {
	// Token is the Raindrop.io API token. Required.
	Token string `yaml:"token"`
	// BaseURL overrides the API endpoint. Empty means production.
	BaseURL string `yaml:"base_url"`
	// TimeoutSeconds bounds each upstream request. Defaults to 30.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// DefaultPath returns the standard config file location:
// $XDG_CONFIG_HOME/raindrop-mcp/config.yaml, falling back to
// ~/.config/raindrop-mcp/config.yaml.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, configDirName, configFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", configDirName, configFileName), nil
}

// Load reads the YAML file at path when it exists, then overlays environment
// variables and fills defaults. A missing file is not an error: the
// environment alone is a complete configuration.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// environment only
	default:
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvToken); v != "" {
		c.Token = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
}

func (c *Config) applyDefaults() {
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = defaultTimeoutSeconds
	}
}

// Validate reports whether the configuration can authenticate at all.
func (c Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("no API token configured: set %s or the token field of the config file", EnvToken)
	}
	return nil
}

// Timeout returns the upstream request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
