// Package app wires configuration, storage and services into a ready
// ledger core.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ledgerkeeper/internal/config"
	"github.com/dmitrijs2005/ledgerkeeper/internal/dbx"
	"github.com/dmitrijs2005/ledgerkeeper/internal/filex"
	"github.com/dmitrijs2005/ledgerkeeper/internal/logging"
	"github.com/dmitrijs2005/ledgerkeeper/internal/repositories/repomanager"
	"github.com/dmitrijs2005/ledgerkeeper/internal/services"
	"github.com/dmitrijs2005/ledgerkeeper/internal/tenant"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	registry *sql.DB

	Credentials *services.CredentialStore
	Ledger      *services.Ledger
	Savings     *services.SavingsAggregator
	Interests   *services.InterestRegistry
	Reports     *services.Reports
}

// New opens the shared registry, creates its schema when absent and builds
// the services. The caller must Close the returned App.
func New(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := filex.EnsureDir(c.DataDir); err != nil {
		return nil, fmt.Errorf("data dir init error: %w", err)
	}
	if err := filex.EnsureParentDir(c.RegistryPath); err != nil {
		return nil, fmt.Errorf("registry dir init error: %w", err)
	}

	registry, err := dbx.OpenSQLite(ctx, c.RegistryPath)
	if err != nil {
		return nil, fmt.Errorf("registry init error: %w", err)
	}

	rm := repomanager.NewSQLiteRepositoryManager()
	if err := rm.ProvisionRegistry(ctx, registry); err != nil {
		_ = registry.Close()
		return nil, fmt.Errorf("registry schema error: %w", err)
	}
	// one writer at a time on the shared file
	registry.SetMaxOpenConns(1)

	tm := tenant.NewManager(c.DataDir, rm, logger)
	sa := services.NewSavingsAggregator(rm, tm, func() time.Time { return time.Now().UTC() })

	logger.Info(ctx, "ledger ready", "registry", c.RegistryPath, "data_dir", c.DataDir)

	return &App{
		config:      c,
		logger:      logger,
		registry:    registry,
		Credentials: services.NewCredentialStore(registry, rm, tm, c, logger),
		Ledger:      services.NewLedger(rm, tm, sa, logger),
		Savings:     sa,
		Interests:   services.NewInterestRegistry(registry, rm, logger),
		Reports:     services.NewReports(rm, tm),
	}, nil
}

func (a *App) Close() error {
	return a.registry.Close()
}
