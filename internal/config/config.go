package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds Flightly's runtime settings.
type Config struct {
	CatalogPath      string
	LogPath          string
	Currency         string
	RouletteMaxPrice float64
	RouletteDelay    time.Duration
}

const (
	defaultConfigPath       = "~/.config/flightly/config.toml"
	defaultLogPath          = "~/.local/state/flightly/flightly.log"
	defaultCurrency         = "EUR"
	defaultRouletteMaxPrice = 400
	defaultRouletteDelay    = 1200 * time.Millisecond
)

// Default returns the built-in configuration with paths expanded.
func Default() Config {
	return Config{
		LogPath:          mustExpand(defaultLogPath),
		Currency:         defaultCurrency,
		RouletteMaxPrice: defaultRouletteMaxPrice,
		RouletteDelay:    defaultRouletteDelay,
	}
}

// Load locates and parses the config file, falling back to defaults when it
// is missing or a value is empty.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		CatalogPath      string  `toml:"catalog_path"`
		LogPath          string  `toml:"log_path"`
		Currency         string  `toml:"currency"`
		RouletteMaxPrice float64 `toml:"roulette_max_price"`
		RouletteDelayMS  int64   `toml:"roulette_delay_ms"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if catalogPath := strings.TrimSpace(raw.CatalogPath); catalogPath != "" {
		cfg.CatalogPath = mustExpand(catalogPath)
	}
	if logPath := strings.TrimSpace(raw.LogPath); logPath != "" {
		cfg.LogPath = mustExpand(logPath)
	}
	if currency := strings.TrimSpace(raw.Currency); currency != "" {
		cfg.Currency = strings.ToUpper(currency)
	}
	if raw.RouletteMaxPrice > 0 {
		cfg.RouletteMaxPrice = raw.RouletteMaxPrice
	}
	if raw.RouletteDelayMS > 0 {
		cfg.RouletteDelay = time.Duration(raw.RouletteDelayMS) * time.Millisecond
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath expands a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
