package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/ledgerkeeper/internal/app"
	"github.com/dmitrijs2005/ledgerkeeper/internal/cli"
	"github.com/dmitrijs2005/ledgerkeeper/internal/config"
	"github.com/dmitrijs2005/ledgerkeeper/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	core, err := app.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer core.Close()

	cli.NewApp(core, cfg, os.Stdin, os.Stdout).Run(ctx)

}
