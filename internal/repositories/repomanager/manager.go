// Package repomanager vends SQLite-backed repositories bound to a DBTX and
// applies the registry and tenant schemas through goose.
package repomanager

import (
	"context"
	"database/sql"
	"io/fs"

	"github.com/dmitrijs2005/ledgerkeeper/internal/dbx"
	"github.com/dmitrijs2005/ledgerkeeper/internal/migrations"
	"github.com/dmitrijs2005/ledgerkeeper/internal/repositories/expenses"
	"github.com/dmitrijs2005/ledgerkeeper/internal/repositories/income"
	"github.com/dmitrijs2005/ledgerkeeper/internal/repositories/savings"
	"github.com/dmitrijs2005/ledgerkeeper/internal/repositories/users"
)

type RepositoryManager interface {
	ProvisionRegistry(ctx context.Context, db *sql.DB) error
	ProvisionTenant(ctx context.Context, db *sql.DB) error

	Users(db dbx.DBTX) users.Repository
	Income(db dbx.DBTX) income.Repository
	Expenses(db dbx.DBTX) expenses.Repository
	Savings(db dbx.DBTX) savings.Repository
}

// SQLiteRepositoryManager is the RepositoryManager used for both the shared
// registry and tenant files.
type SQLiteRepositoryManager struct{}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

// migrateUp is a seam for testing schema application.
var migrateUp = func(ctx context.Context, db *sql.DB, fsys fs.FS) error {
	return migrations.Up(ctx, db, fsys)
}

// ProvisionRegistry creates the users table when absent.
func (m *SQLiteRepositoryManager) ProvisionRegistry(ctx context.Context, db *sql.DB) error {
	return migrateUp(ctx, db, migrations.Registry())
}

// ProvisionTenant creates the income, expenses and savings tables when
// absent. Existing rows are never touched.
func (m *SQLiteRepositoryManager) ProvisionTenant(ctx context.Context, db *sql.DB) error {
	return migrateUp(ctx, db, migrations.Tenant())
}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Income(db dbx.DBTX) income.Repository {
	return income.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Expenses(db dbx.DBTX) expenses.Repository {
	return expenses.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Savings(db dbx.DBTX) savings.Repository {
	return savings.NewSQLiteRepository(db)
}
