package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/ledgerkeeper/internal/config"
	"github.com/dmitrijs2005/ledgerkeeper/internal/logging"
	"github.com/dmitrijs2005/ledgerkeeper/internal/repositories/repomanager"
	"github.com/dmitrijs2005/ledgerkeeper/internal/repositories/testutil"
	"github.com/dmitrijs2005/ledgerkeeper/internal/tenant"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)

type fixture struct {
	cfg       *config.Config
	repos     repomanager.RepositoryManager
	tenants   *tenant.Manager
	creds     *CredentialStore
	savings   *SavingsAggregator
	ledger    *Ledger
	interests *InterestRegistry
	reports   *Reports
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWith(t, repomanager.NewSQLiteRepositoryManager())
}

func newFixtureWith(t *testing.T, repos repomanager.RepositoryManager) *fixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.BcryptCost = bcrypt.MinCost
	cfg.DataDir = filepath.Join(t.TempDir(), "tenants")

	log := logging.Nop()
	registry := testutil.OpenRegistry(t)
	tenants := tenant.NewManager(cfg.DataDir, repos, log)
	agg := NewSavingsAggregator(repos, tenants, func() time.Time { return fixedNow })

	return &fixture{
		cfg:       cfg,
		repos:     repos,
		tenants:   tenants,
		creds:     NewCredentialStore(registry, repos, tenants, cfg, log),
		savings:   agg,
		ledger:    NewLedger(repos, tenants, agg, log),
		interests: NewInterestRegistry(registry, repos, log),
		reports:   NewReports(repos, tenants),
	}
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got)
}
