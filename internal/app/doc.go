// Package app is the composition root for Flightly.
//
// Run loads the configuration, points slog at the log file, reads the theme
// preference, loads the catalog (the -catalog flag wins over catalog_path in
// the config), builds the roulette selector and hands everything to ui.Run.
//
//	Run()
//	  ├─> config.Load()     ~/.config/flightly/config.toml
//	  ├─> setupLogging()    log_path, slog text handler
//	  ├─> prefs.Load()      theme
//	  ├─> catalog.Load()    built-in or TOML override
//	  ├─> roulette.NewSelector()
//	  └─> ui.Run()          blocks until quit or ctx cancel
//
// Config, log and catalog failures are fatal and returned wrapped. A broken
// prefs file only falls back to the default theme.
package app
