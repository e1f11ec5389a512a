package tenant

import (
	"context"
	"database/sql"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/ledgerkeeper/internal/common"
	"github.com/dmitrijs2005/ledgerkeeper/internal/dbx"
	"github.com/dmitrijs2005/ledgerkeeper/internal/filex"
	"github.com/dmitrijs2005/ledgerkeeper/internal/logging"
	"github.com/dmitrijs2005/ledgerkeeper/internal/repositories/repomanager"
)

type Manager struct {
	dataDir string
	repos   repomanager.RepositoryManager
	log     logging.Logger
	locks   *keyedMutex
}

func NewManager(dataDir string, repos repomanager.RepositoryManager, log logging.Logger) *Manager {
	return &Manager{
		dataDir: dataDir,
		repos:   repos,
		log:     log,
		locks:   newKeyedMutex(),
	}
}

// Path returns the store file of userName. The name is the SHA-256 hex of
// the username, so its length does not depend on the username.
func (m *Manager) Path(userName string) string {
	sum := sha256.Sum256([]byte(userName))
	return filepath.Join(m.dataDir, hex.EncodeToString(sum[:])+".db")
}

// Ensure creates the tenant's store and tables when absent. Repeating it is
// harmless and leaves existing records untouched.
func (m *Manager) Ensure(ctx context.Context, userName string) error {
	if userName == "" {
		return common.Invalid("username is required")
	}

	unlock := m.locks.Lock(userName)
	defer unlock()

	if err := filex.EnsureDir(m.dataDir); err != nil {
		return common.Storage("create data dir", err)
	}

	db, err := dbx.OpenSQLite(ctx, m.Path(userName))
	if err != nil {
		return common.Storage("open tenant store", err)
	}
	defer db.Close()

	if err := m.repos.ProvisionTenant(ctx, db); err != nil {
		return common.Storage("provision tenant", err)
	}

	m.log.Debug(ctx, "tenant store ready", "user", userName)
	return nil
}

// Exists reports whether userName has a provisioned store file.
func (m *Manager) Exists(userName string) (bool, error) {
	_, err := os.Stat(m.Path(userName))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, common.Storage("stat tenant store", err)
}

// WithStore runs fn against the tenant's open store while holding the
// tenant lock. The handle is closed when fn returns.
func (m *Manager) WithStore(ctx context.Context, userName string, fn func(ctx context.Context, db *sql.DB) error) error {
	if userName == "" {
		return common.Invalid("username is required")
	}

	unlock := m.locks.Lock(userName)
	defer unlock()

	ok, err := m.Exists(userName)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("tenant %q not provisioned: %w", userName, common.ErrorNotFound)
	}

	db, err := dbx.OpenSQLite(ctx, m.Path(userName))
	if err != nil {
		return common.Storage("open tenant store", err)
	}
	defer db.Close()

	return fn(ctx, db)
}

// WithTx is WithStore with fn wrapped in a single transaction: either every
// write made by fn is committed or none is.
func (m *Manager) WithTx(ctx context.Context, userName string, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	return m.WithStore(ctx, userName, func(ctx context.Context, db *sql.DB) error {
		return dbx.WithTx(ctx, db, nil, fn)
	})
}
