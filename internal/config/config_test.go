package config

import (
	"os"
	"path/filepath"
	"testing"
)

// pointConfigAt redirects the config dir to a temp location for the test.
func pointConfigAt(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "expense-tracker")
}

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	pointConfigAt(t)
	t.Setenv("EXPENSE_API_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:9820" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.General.DefaultCurrency != "INR" {
		t.Errorf("DefaultCurrency = %q", cfg.General.DefaultCurrency)
	}
	if cfg.General.ResumeSession {
		t.Error("ResumeSession must default to false")
	}
}

func TestSaveThenLoad(t *testing.T) {
	pointConfigAt(t)
	t.Setenv("EXPENSE_API_URL", "")

	cfg := DefaultConfig()
	cfg.API.BaseURL = "http://expenses.internal:8080"
	cfg.General.ResumeSession = true
	cfg.Appearance.Theme = "terminal"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.API.BaseURL != cfg.API.BaseURL {
		t.Errorf("BaseURL = %q, want %q", got.API.BaseURL, cfg.API.BaseURL)
	}
	if !got.General.ResumeSession {
		t.Error("ResumeSession not round-tripped")
	}
	if got.Appearance.Theme != "terminal" {
		t.Errorf("Theme = %q", got.Appearance.Theme)
	}
}

func TestLoad_EnvOverridesBaseURL(t *testing.T) {
	pointConfigAt(t)
	t.Setenv("EXPENSE_API_URL", "http://override:9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "http://override:9999" {
		t.Errorf("BaseURL = %q, want env override", cfg.API.BaseURL)
	}
}

func TestLoad_BadTOML(t *testing.T) {
	dir := pointConfigAt(t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [toml"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("want error on malformed config")
	}
}
