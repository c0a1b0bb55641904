// Package config loads Flightly's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/flightly/config.toml (default)
//  3. If the config file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing, empty or non-positive, use defaults
//
// # Configuration Fields
//
//	catalog_path        optional catalog override (see package catalog)
//	log_path            log file, default ~/.local/state/flightly/flightly.log
//	currency            display currency code, default EUR
//	roulette_max_price  exclusive price ceiling for roulette picks, default 400
//	roulette_delay_ms   simulated spin time, default 1200
//
// Paths starting with ~ are expanded against the user's home directory and
// made absolute. String values are trimmed.
//
// # Error Handling
//
// A missing file is not an error. Open, read and TOML parse failures are
// returned wrapped ("open config", "read config", "parse config").
package config
