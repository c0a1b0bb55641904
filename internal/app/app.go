package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/five82/flightly/internal/catalog"
	"github.com/five82/flightly/internal/config"
	"github.com/five82/flightly/internal/prefs"
	"github.com/five82/flightly/internal/roulette"
	"github.com/five82/flightly/internal/ui"
)

// Options configure the Flightly application.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/flightly/prefs.toml
	CatalogPath string // overrides catalog_path from the config file
}

// Run boots the Flightly TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closeLog, err := setupLogging(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	userPrefs := prefs.Load(opts.PrefsPath)

	cat, err := loadCatalog(cfg, opts.CatalogPath)
	if err != nil {
		return err
	}

	selector := roulette.NewSelector(cfg.RouletteMaxPrice, nil)

	slog.Info("flightly starting",
		"destinations", len(cat.Destinations()),
		"flights", len(cat.Flights()),
		"roulette_max_price", selector.MaxPrice(),
		"theme", userPrefs.Theme,
	)

	uiOpts := ui.Options{
		Context:       ctx,
		Catalog:       cat,
		Selector:      selector,
		Currency:      cfg.Currency,
		RouletteDelay: cfg.RouletteDelay,
		ThemeName:     userPrefs.Theme,
		PrefsPath:     opts.PrefsPath,
	}
	err = ui.Run(uiOpts)
	slog.Info("flightly stopped", "error", err)
	return err
}

// loadCatalog resolves the catalog file (flag first, then config) and loads
// it. No path means the built-in catalog.
func loadCatalog(cfg config.Config, override string) (*catalog.Catalog, error) {
	path := cfg.CatalogPath
	if strings.TrimSpace(override) != "" {
		expanded, err := config.ExpandPath(override)
		if err != nil {
			return nil, fmt.Errorf("resolve catalog path: %w", err)
		}
		path = expanded
	}

	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}
