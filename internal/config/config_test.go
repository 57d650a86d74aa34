package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.API.Endpoint != "http://localhost:3001/api/v1/generate-script" {
		t.Errorf("expected default endpoint, got %s", cfg.API.Endpoint)
	}
	if cfg.Player.Command != "mpv" {
		t.Errorf("expected player mpv, got %s", cfg.Player.Command)
	}
	if cfg.Player.SeekStep != 10 {
		t.Errorf("expected seek_step 10, got %d", cfg.Player.SeekStep)
	}
	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha, got %s", cfg.UI.Theme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.API.Endpoint != DefaultEndpoint {
		t.Errorf("expected default endpoint, got %s", cfg.API.Endpoint)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[api]
endpoint = "https://render.example.com/api/v1/generate-script"

[player]
command = "vlc"
args = ["--fullscreen"]
seek_step = 5

[ui]
theme = "latte"

[log]
path = "/tmp/animath-test.log"
max_size_mb = 2
max_backups = 1
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.API.Endpoint != "https://render.example.com/api/v1/generate-script" {
		t.Errorf("unexpected endpoint %s", cfg.API.Endpoint)
	}
	if cfg.Player.Command != "vlc" {
		t.Errorf("expected player vlc, got %s", cfg.Player.Command)
	}
	if len(cfg.Player.Args) != 1 || cfg.Player.Args[0] != "--fullscreen" {
		t.Errorf("unexpected player args %v", cfg.Player.Args)
	}
	if cfg.Player.SeekStep != 5 {
		t.Errorf("expected seek_step 5, got %d", cfg.Player.SeekStep)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}
	if cfg.Log.Path != "/tmp/animath-test.log" {
		t.Errorf("expected log path /tmp/animath-test.log, got %s", cfg.Log.Path)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[api]
endpoint = "http://file.example.com/generate"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("ANIMATH_ENDPOINT", "http://env.example.com/generate")
	t.Setenv("ANIMATH_PLAYER", "celluloid")
	t.Setenv("ANIMATH_THEME", "latte")
	t.Setenv("ANIMATH_LOG_PATH", "/tmp/env.log")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.API.Endpoint != "http://env.example.com/generate" {
		t.Errorf("expected env endpoint, got %s", cfg.API.Endpoint)
	}
	if cfg.Player.Command != "celluloid" {
		t.Errorf("expected env player, got %s", cfg.Player.Command)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected env theme, got %s", cfg.UI.Theme)
	}
	if cfg.Log.Path != "/tmp/env.log" {
		t.Errorf("expected env log path, got %s", cfg.Log.Path)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(configPath, []byte("[api\nendpoint ="), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := LoadFrom(configPath)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parsing config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadFrom_ExpandsHomeInLogPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	t.Setenv("ANIMATH_LOG_PATH", "~/logs/animath.log")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := filepath.Join(home, "logs", "animath.log")
	if cfg.Log.Path != want {
		t.Errorf("log path = %q, want %q", cfg.Log.Path, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:    "empty endpoint",
			modify:  func(c *Config) { c.API.Endpoint = "" },
			wantErr: "api endpoint must be set",
		},
		{
			name:    "non http endpoint",
			modify:  func(c *Config) { c.API.Endpoint = "ftp://example.com/x" },
			wantErr: "http or https",
		},
		{
			name:    "endpoint without host",
			modify:  func(c *Config) { c.API.Endpoint = "http:///generate" },
			wantErr: "must include a host",
		},
		{
			name:    "empty player",
			modify:  func(c *Config) { c.Player.Command = "  " },
			wantErr: "player command must be set",
		},
		{
			name:    "zero seek step",
			modify:  func(c *Config) { c.Player.SeekStep = 0 },
			wantErr: "seek_step must be positive",
		},
		{
			name:    "empty log path",
			modify:  func(c *Config) { c.Log.Path = "" },
			wantErr: "log path must be set",
		},
		{
			name:    "negative backups",
			modify:  func(c *Config) { c.Log.MaxBackups = -1 },
			wantErr: "must not be negative",
		},
		{
			name:   "valid https endpoint",
			modify: func(c *Config) { c.API.Endpoint = "https://example.com/api/v1/generate-script" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.API.Endpoint = "http://127.0.0.1:9000/generate"
	cfg.UI.Theme = "latte"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.API.Endpoint != cfg.API.Endpoint {
		t.Errorf("endpoint = %q, want %q", loaded.API.Endpoint, cfg.API.Endpoint)
	}
	if loaded.UI.Theme != "latte" {
		t.Errorf("theme = %q, want latte", loaded.UI.Theme)
	}
}
