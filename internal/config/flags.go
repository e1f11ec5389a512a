package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/ledgerkeeper/internal/flagx"
)

// parseFlags populates Config from command-line flags.
//
//	-d string   tenant data directory
//	-r string   registry SQLite file
//	-s string   session token secret
//	-t int      session validity, minutes
//	-b int      bcrypt cost
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (text, json)
//	-m string   display currency (ISO 4217)
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-r", "-s", "-t", "-b", "-l", "-f", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DataDir, "d", config.DataDir, "tenant data directory")
	fs.StringVar(&config.RegistryPath, "r", config.RegistryPath, "registry database file")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "session token secret")
	ttl := fs.Int("t", int(config.SessionTTL.Minutes()), "session validity (in minutes)")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format (text|json)")
	fs.StringVar(&config.Currency, "m", config.Currency, "display currency")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTTL = time.Duration(*ttl) * time.Minute
}
