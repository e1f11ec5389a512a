// Package config handles ledger configuration: defaults, an optional JSON
// overlay, and command-line flags, applied in that order.
package config

import "time"

// Config holds runtime settings for the ledger.
//
// Fields:
//   - DataDir: directory holding one SQLite file per tenant.
//   - RegistryPath: SQLite file of the shared credential registry.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//   - SessionTTL: lifetime of a session token issued at login.
//   - BcryptCost: work factor for password hashes.
//   - LogLevel / LogFormat: slog level name and "text" or "json".
//   - Currency: ISO 4217 code used when the CLI displays amounts.
type Config struct {
	DataDir      string
	RegistryPath string
	SecretKey    string
	SessionTTL   time.Duration
	BcryptCost   int
	LogLevel     string
	LogFormat    string
	Currency     string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key must be overridden outside of local use.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.RegistryPath = "data/users.db"
	c.SecretKey = "secretKey"
	c.SessionTTL = 30 * time.Minute
	c.BcryptCost = 10
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.Currency = "USD"
}

// LoadConfig applies defaults, then the JSON file named by -c/-config,
// then command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
