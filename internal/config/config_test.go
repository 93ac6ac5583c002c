package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestLoadMissingFile verifies defaults apply when no config file exists.
func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.API.Timeout)
	}
	if cfg.Store.HistoryPath != "tamscout.db" {
		t.Errorf("HistoryPath = %q", cfg.Store.HistoryPath)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
}

// TestLoadFile verifies yaml values override defaults.
func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tamscout.yaml")
	content := `
api:
  base_url: https://store.example/x-tams/v6.0
  token: s3cret
  timeout: 10s
store:
  history_path: /tmp/history.db
  max_events: 100
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.API.BaseURL != "https://store.example/x-tams/v6.0" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Token != "s3cret" {
		t.Errorf("Token = %q", cfg.API.Token)
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v", cfg.API.Timeout)
	}
	if cfg.Store.MaxEvents != 100 {
		t.Errorf("MaxEvents = %d", cfg.Store.MaxEvents)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
}

// TestEnvOverrides verifies TAMSCOUT_* variables beat file values.
func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tamscout.yaml")
	if err := os.WriteFile(path, []byte("api:\n  base_url: https://file.example\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TAMSCOUT_URL", "https://env.example")
	t.Setenv("TAMSCOUT_TOKEN", "envtoken")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.API.BaseURL != "https://env.example" {
		t.Errorf("BaseURL = %q, want env value", cfg.API.BaseURL)
	}
	if cfg.API.Token != "envtoken" {
		t.Errorf("Token = %q, want env value", cfg.API.Token)
	}
}

// TestValidate rejects bad values.
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"negative timeout", func(c *Config) { c.API.Timeout = -time.Second }, true},
		{"negative max events", func(c *Config) { c.Store.MaxEvents = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
