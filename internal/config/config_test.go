package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Currency != defaultCurrency {
		t.Fatalf("Currency = %q, want %q", cfg.Currency, defaultCurrency)
	}
	if cfg.RouletteMaxPrice != defaultRouletteMaxPrice {
		t.Fatalf("RouletteMaxPrice = %v, want %v", cfg.RouletteMaxPrice, defaultRouletteMaxPrice)
	}
	if cfg.RouletteDelay != 1200*time.Millisecond {
		t.Fatalf("RouletteDelay = %v, want 1.2s", cfg.RouletteDelay)
	}
	if cfg.CatalogPath != "" {
		t.Fatalf("CatalogPath = %q, want empty", cfg.CatalogPath)
	}

	wantLog, err := expandPath(defaultLogPath)
	if err != nil {
		t.Fatalf("expandPath(defaultLogPath) returned error: %v", err)
	}
	if cfg.LogPath != wantLog {
		t.Fatalf("LogPath = %q, want %q", cfg.LogPath, wantLog)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
catalog_path = "  ~/trips/catalog.toml  "
log_path = " ~/logs/flightly.log "
currency = " gbp "
roulette_max_price = 250
roulette_delay_ms = 300
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.CatalogPath != filepath.Join(home, "trips/catalog.toml") {
		t.Fatalf("CatalogPath = %q, want under HOME", cfg.CatalogPath)
	}
	if !strings.HasPrefix(cfg.LogPath, home) {
		t.Fatalf("LogPath = %q, want it under HOME %q", cfg.LogPath, home)
	}
	if cfg.Currency != "GBP" {
		t.Fatalf("Currency = %q, want GBP", cfg.Currency)
	}
	if cfg.RouletteMaxPrice != 250 {
		t.Fatalf("RouletteMaxPrice = %v, want 250", cfg.RouletteMaxPrice)
	}
	if cfg.RouletteDelay != 300*time.Millisecond {
		t.Fatalf("RouletteDelay = %v, want 300ms", cfg.RouletteDelay)
	}
}

func TestLoad_EmptyAndInvalidValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
log_path = "   "
currency = ""
roulette_max_price = -10
roulette_delay_ms = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	def := Default()
	if cfg != def {
		t.Fatalf("Load = %#v, want defaults %#v", cfg, def)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`currency = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
