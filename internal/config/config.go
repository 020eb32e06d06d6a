// Package config loads and manages ghostwriter configuration.
// Configuration source priority (highest to lowest):
// 1. OS keyring (secret key only)
// 2. Environment variables (OPENAI_API_KEY, GHOSTWRITER_*)
// 3. Config file path specified via --config flag
// 4. ~/.config/ghostwriter/config.yaml
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// MaxTokensCeiling bounds the max_tokens setting. Values outside the valid
// ranges are clamped on load rather than rejected.
const MaxTokensCeiling = 2048

// Defaults applied before the config file and environment are merged in.
const (
	DefaultMaxTokens   = 150
	DefaultTemperature = 0.8
	DefaultTopP        = 0.95
)

// Config holds the persisted settings for ghostwriter.
type Config struct {
	// SecretKey authenticates against the completion service.
	// Empty means unconfigured; completion commands fail before any
	// network call.
	SecretKey string `yaml:"openai_secret_key"`

	// BaseURL overrides the completion endpoint for OpenAI-compatible
	// servers. Empty uses the vendor default.
	BaseURL string `yaml:"base_url"`

	// MaxTokens reserved for the response, clamped to [0, 2048].
	MaxTokens int `yaml:"max_tokens"`

	// Temperature in [0, 1].
	Temperature float64 `yaml:"temperature"`

	// TopP in [0, 1].
	TopP float64 `yaml:"top_p"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		SecretKey:   "",
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
		TopP:        DefaultTopP,
	}
}

// DefaultPath returns ~/.config/ghostwriter/config.yaml, or an error when
// the home directory cannot be determined.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "ghostwriter", "config.yaml"), nil
}

// Load reads the config file, merges environment variable and keyring
// overrides, and clamps generation parameters into their valid ranges.
// A missing file is not an error; defaults are used.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath == "" {
		if p, err := DefaultPath(); err == nil {
			configPath = p
		}
	}

	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
	}

	applyEnvOverrides(cfg)

	// Keyring wins over everything: a key stored there is the user's
	// explicit choice to keep it out of plaintext config.
	if v := keyringSecret(); v != "" {
		cfg.SecretKey = v
	}

	cfg.clampParams()
	return cfg, nil
}

// Configured reports whether a service credential is present.
func (c *Config) Configured() bool {
	return c.SecretKey != ""
}

func (c *Config) clampParams() {
	if c.MaxTokens < 0 {
		c.MaxTokens = 0
	}
	if c.MaxTokens > MaxTokensCeiling {
		c.MaxTokens = MaxTokensCeiling
	}
	c.Temperature = clampUnit(c.Temperature)
	c.TopP = clampUnit(c.TopP)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SaveValue persists a single setting into the config file at path,
// preserving all other user settings and unknown fields.
func SaveValue(path, key string, value any) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Read existing file into a generic map to preserve unknown fields.
	raw := make(map[string]any)
	if data, err := os.ReadFile(path); err == nil {
		_ = yaml.Unmarshal(data, &raw) // ignore errors; start fresh if corrupt
	}
	raw[key] = value

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	data, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.SecretKey = v
	}
	if v := os.Getenv("GHOSTWRITER_API_KEY"); v != "" {
		cfg.SecretKey = v
	}
	if v := os.Getenv("GHOSTWRITER_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
}
