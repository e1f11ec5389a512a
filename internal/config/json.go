package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/ledgerkeeper/internal/flagx"
	"github.com/dmitrijs2005/ledgerkeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Omitted fields leave
// the current value untouched.
type JsonConfig struct {
	DataDir      *string         `json:"data_dir"`
	RegistryPath *string         `json:"registry_path"`
	SecretKey    *string         `json:"secret_key"`
	SessionTTL   *timex.Duration `json:"session_ttl"`
	BcryptCost   *int            `json:"bcrypt_cost"`
	LogLevel     *string         `json:"log_level"`
	LogFormat    *string         `json:"log_format"`
	Currency     *string         `json:"currency"`
}

// parseJson overlays values from the file given with -c or -config. It is a
// no-op when no file is named and panics when the file cannot be read or
// parsed.
func parseJson(config *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.DataDir != nil {
		config.DataDir = *c.DataDir
	}
	if c.RegistryPath != nil {
		config.RegistryPath = *c.RegistryPath
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.SessionTTL != nil {
		config.SessionTTL = c.SessionTTL.Duration
	}
	if c.BcryptCost != nil {
		config.BcryptCost = *c.BcryptCost
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
	if c.LogFormat != nil {
		config.LogFormat = *c.LogFormat
	}
	if c.Currency != nil {
		config.Currency = *c.Currency
	}
}
