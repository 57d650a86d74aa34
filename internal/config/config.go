// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultEndpoint is the local generate-script service.
const DefaultEndpoint = "http://localhost:3001/api/v1/generate-script"

// Config holds the application configuration.
type Config struct {
	API    APIConfig    `toml:"api"`
	Player PlayerConfig `toml:"player"`
	UI     UIConfig     `toml:"ui"`
	Log    LogConfig    `toml:"log"`
}

// APIConfig holds the generation backend settings.
type APIConfig struct {
	Endpoint string `toml:"endpoint"` // full URL of the generate-script endpoint
}

// PlayerConfig holds external media player settings.
type PlayerConfig struct {
	Command  string   `toml:"command"`   // e.g., "mpv"
	Args     []string `toml:"args"`      // extra arguments passed before the URL
	SeekStep int      `toml:"seek_step"` // seconds per seek key press
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "latte"
}

// LogConfig holds diagnostic log settings.
type LogConfig struct {
	Path       string `toml:"path"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			Endpoint: DefaultEndpoint,
		},
		Player: PlayerConfig{
			Command:  "mpv",
			Args:     []string{},
			SeekStep: 10,
		},
		UI: UIConfig{
			Theme: "mocha",
		},
		Log: LogConfig{
			Path:       defaultLogPath(),
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// defaultLogPath returns the default diagnostic log path.
func defaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "animath.log"
	}
	return filepath.Join(home, ".local", "state", "animath", "animath.log")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "animath", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Log.Path = expandPath(cfg.Log.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ANIMATH_ENDPOINT"); v != "" {
		cfg.API.Endpoint = v
	}
	if v := os.Getenv("ANIMATH_PLAYER"); v != "" {
		cfg.Player.Command = v
	}
	if v := os.Getenv("ANIMATH_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("ANIMATH_LOG_PATH"); v != "" {
		cfg.Log.Path = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validateEndpoint(c.API.Endpoint); err != nil {
		return err
	}
	if strings.TrimSpace(c.Player.Command) == "" {
		return errors.New("player command must be set")
	}
	if c.Player.SeekStep <= 0 {
		return fmt.Errorf("seek_step must be positive, got %d", c.Player.SeekStep)
	}
	if c.Log.Path == "" {
		return errors.New("log path must be set")
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 {
		return errors.New("log rotation limits must not be negative")
	}
	return nil
}

func validateEndpoint(raw string) error {
	if raw == "" {
		return errors.New("api endpoint must be set")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("api endpoint %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api endpoint must use http or https, got %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("api endpoint must include a host, got %q", raw)
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
