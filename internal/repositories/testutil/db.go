// Package testutil opens schema-ready SQLite files for repository and
// service tests.
package testutil

import (
	"context"
	"database/sql"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/ledgerkeeper/internal/dbx"
	"github.com/dmitrijs2005/ledgerkeeper/internal/migrations"
	"github.com/stretchr/testify/require"
)

// OpenRegistry returns a fresh registry database under t.TempDir().
func OpenRegistry(t *testing.T) *sql.DB {
	t.Helper()
	return open(t, "users.db", migrations.Registry)
}

// OpenTenant returns a fresh tenant ledger database under t.TempDir().
func OpenTenant(t *testing.T) *sql.DB {
	t.Helper()
	return open(t, "tenant.db", migrations.Tenant)
}

func open(t *testing.T, name string, schema func() fs.FS) *sql.DB {
	t.Helper()
	ctx := context.Background()

	db, err := dbx.OpenSQLite(ctx, filepath.Join(t.TempDir(), name))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Up(ctx, db, schema()))
	return db
}
