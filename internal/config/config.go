// Package config loads and saves the application's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all expense-tracker configuration.
type Config struct {
	API        APIConfig        `toml:"api"`
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
}

// APIConfig holds remote service settings.
type APIConfig struct {
	BaseURL string `toml:"base_url"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DefaultCurrency string `toml:"default_currency"`
	// ResumeSession controls whether a persisted session token skips the
	// login screen on startup. Off by default.
	ResumeSession bool `toml:"resume_session"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	File string `toml:"file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:9820",
		},
		General: GeneralConfig{
			DefaultCurrency: "INR",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "expense-tracker")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "expense-tracker")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// SessionDBPath returns the path of the persisted session database.
func SessionDBPath() string {
	return filepath.Join(Dir(), "session.db")
}

// LogPath returns the configured log file, or the default one in the
// config directory.
func LogPath(cfg Config) string {
	if cfg.Log.File != "" {
		return cfg.Log.File
	}
	return filepath.Join(Dir(), "expense-tracker.log")
}

// Load reads the config file, returning defaults if it doesn't exist.
// The EXPENSE_API_URL environment variable overrides the base URL.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if u := os.Getenv("EXPENSE_API_URL"); u != "" {
		cfg.API.BaseURL = u
	}
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}
