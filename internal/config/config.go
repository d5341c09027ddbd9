// Package config holds runtime settings for the certfolio CLI.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - DatabaseDSN: path (or sqlite DSN) of the local database file.
//   - OwnerID / OwnerPassword: the owner credential pair for the admin gate.
//     These are compared locally, never sent anywhere; see the session
//     package for the trust model.
//   - NoticeTTL: how long transient status messages stay visible.
type Config struct {
	DatabaseDSN   string
	OwnerID       string
	OwnerPassword string
	NoticeTTL     time.Duration
}

// LoadDefaults populates c with the stock settings. The default credentials
// mirror the original site and are meant to be overridden.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "certfolio.db"
	c.OwnerID = "admin"
	c.OwnerPassword = "password123"
	c.NoticeTTL = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
