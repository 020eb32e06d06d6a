package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// neutralizeEnv blanks the override variables so host environment leaks
// cannot affect Load results.
func neutralizeEnv(t *testing.T) {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GHOSTWRITER_API_KEY", "")
	t.Setenv("GHOSTWRITER_BASE_URL", "")
}

func TestDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.SecretKey != "" {
		t.Error("default secret key must be empty (unconfigured)")
	}
	if cfg.MaxTokens != 150 {
		t.Errorf("max_tokens = %d, want 150", cfg.MaxTokens)
	}
	if cfg.Temperature != 0.8 {
		t.Errorf("temperature = %g, want 0.8", cfg.Temperature)
	}
	if cfg.TopP != 0.95 {
		t.Errorf("top_p = %g, want 0.95", cfg.TopP)
	}
	if cfg.Configured() {
		t.Error("default config must not report configured")
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	neutralizeEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("openai_secret_key: sk-abc\ntemperature: 0.3\n"), 0600)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SecretKey != "sk-abc" {
		t.Errorf("secret = %q", cfg.SecretKey)
	}
	if cfg.Temperature != 0.3 {
		t.Errorf("temperature = %g", cfg.Temperature)
	}
	// Untouched keys keep their defaults.
	if cfg.MaxTokens != 150 || cfg.TopP != 0.95 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	neutralizeEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxTokens != DefaultMaxTokens {
		t.Errorf("max_tokens = %d", cfg.MaxTokens)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	neutralizeEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("max_tokens: [not an int\n"), 0600)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}

func TestLoadClampsRanges(t *testing.T) {
	neutralizeEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("max_tokens: 99999\ntemperature: 1.7\ntop_p: -0.2\n"), 0600)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxTokens != MaxTokensCeiling {
		t.Errorf("max_tokens = %d, want ceiling %d", cfg.MaxTokens, MaxTokensCeiling)
	}
	if cfg.Temperature != 1 {
		t.Errorf("temperature = %g, want 1", cfg.Temperature)
	}
	if cfg.TopP != 0 {
		t.Errorf("top_p = %g, want 0", cfg.TopP)
	}
}

func TestEnvOverride(t *testing.T) {
	neutralizeEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-env")
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("openai_secret_key: sk-file\n"), 0600)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SecretKey != "sk-env" {
		t.Errorf("secret = %q, want env override", cfg.SecretKey)
	}
}

func TestSaveValuePreservesUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("custom_setting: keep-me\nmax_tokens: 100\n"), 0600)

	if err := SaveValue(path, "temperature", 0.4); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	raw := make(map[string]any)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if raw["custom_setting"] != "keep-me" {
		t.Error("unknown field dropped on save")
	}
	if raw["max_tokens"] != 100 {
		t.Errorf("max_tokens = %v, want 100", raw["max_tokens"])
	}
	if raw["temperature"] != 0.4 {
		t.Errorf("temperature = %v", raw["temperature"])
	}
}

func TestSaveValueCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := SaveValue(path, "openai_secret_key", "sk-new"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "openai_secret_key: sk-new") {
		t.Fatalf("saved content = %q", data)
	}
}
