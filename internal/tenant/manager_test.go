package tenant

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/ledgerkeeper/internal/common"
	"github.com/dmitrijs2005/ledgerkeeper/internal/dbx"
	"github.com/dmitrijs2005/ledgerkeeper/internal/logging"
	"github.com/dmitrijs2005/ledgerkeeper/internal/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(filepath.Join(t.TempDir(), "tenants"), repomanager.NewSQLiteRepositoryManager(), logging.Nop())
}

func countIncome(t *testing.T, m *Manager, user string) int {
	t.Helper()
	var n int
	err := m.WithStore(context.Background(), user, func(ctx context.Context, db *sql.DB) error {
		return db.QueryRowContext(ctx, `SELECT COUNT(*) FROM income`).Scan(&n)
	})
	require.NoError(t, err)
	return n
}

func TestPath_IsDigestOfUsername(t *testing.T) {
	m := NewManager("/data", nil, logging.Nop())

	assert.Equal(t, filepath.Join("/data", "2bd806c97f0e00af1a1fc3328fa763a9269723c8db8fac4f93af71db186d6e90.db"), m.Path("alice"))
	assert.Len(t, filepath.Base(m.Path(strings.Repeat("x", 4096))), 67)
	assert.NotEqual(t, m.Path("alice"), m.Path("Alice"))
	assert.False(t, strings.Contains(filepath.Base(m.Path("../../etc/passwd")), "/"))
}

func TestEnsure_IdempotentAndKeepsRecords(t *testing.T) {
	m := newManager(t)
	ctx := context.Background()

	require.NoError(t, m.Ensure(ctx, "alice"))
	err := m.WithTx(ctx, "alice", func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO income (amount, date) VALUES ('100', '2024-01-01')`)
		return err
	})
	require.NoError(t, err)

	require.NoError(t, m.Ensure(ctx, "alice"))
	require.NoError(t, m.Ensure(ctx, "alice"))
	assert.Equal(t, 1, countIncome(t, m, "alice"))
}

func TestEnsure_EmptyUser(t *testing.T) {
	m := newManager(t)
	assert.ErrorIs(t, m.Ensure(context.Background(), ""), common.ErrorValidation)
}

func TestWithStore_NotProvisioned(t *testing.T) {
	m := newManager(t)

	called := false
	err := m.WithStore(context.Background(), "ghost", func(context.Context, *sql.DB) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.False(t, called)

	ok, err := m.Exists("ghost")
	require.NoError(t, err)
	assert.False(t, ok, "a failed lookup must not create the store")
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	m := newManager(t)
	ctx := context.Background()
	require.NoError(t, m.Ensure(ctx, "bob"))

	err := m.WithTx(ctx, "bob", func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO income (amount, date) VALUES ('1', '2024-01-01')`); err != nil {
			return err
		}
		return common.Invalid("late failure")
	})
	assert.ErrorIs(t, err, common.ErrorValidation)
	assert.Equal(t, 0, countIncome(t, m, "bob"))
}

func TestTenantsAreIsolated(t *testing.T) {
	m := newManager(t)
	ctx := context.Background()
	require.NoError(t, m.Ensure(ctx, "alice"))
	require.NoError(t, m.Ensure(ctx, "bob"))

	err := m.WithTx(ctx, "alice", func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO income (amount, date) VALUES ('1', '2024-01-01')`)
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, 1, countIncome(t, m, "alice"))
	assert.Equal(t, 0, countIncome(t, m, "bob"))
}

func TestEnsure_LongUsername(t *testing.T) {
	m := newManager(t)
	ctx := context.Background()
	user := strings.Repeat("long-name-", 30)

	require.NoError(t, m.Ensure(ctx, user))
	assert.Equal(t, 0, countIncome(t, m, user))
}
