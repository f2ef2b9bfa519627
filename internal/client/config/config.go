// Package config loads runtime configuration for the fridgekeeper CLI.
//
// Sources & precedence:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
package config

import "time"

// Config holds runtime settings for the CLI.
type Config struct {
	// APIBaseURL is the root of the remote service, no trailing slash.
	APIBaseURL string
	// RequestTimeout bounds every HTTP call.
	RequestTimeout time.Duration
	// LocalDBPath is the SQLite file holding the durable session snapshot.
	LocalDBPath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 15 * time.Second
	c.LocalDBPath = "fridge.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
