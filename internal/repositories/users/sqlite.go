package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ledgerkeeper/internal/common"
	"github.com/dmitrijs2005/ledgerkeeper/internal/dbx"
	"github.com/dmitrijs2005/ledgerkeeper/internal/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.UserAccount) error {
	interests, err := encodeInterests(user.Interests)
	if err != nil {
		return err
	}

	query := `INSERT INTO users (username, password_hash, interests) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, user.UserName, user.PasswordHash, interests); err != nil {
		if isConstraintViolation(err) {
			return common.ErrorDuplicateUsername
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByUserName(ctx context.Context, userName string) (*models.UserAccount, error) {
	query := `SELECT username, password_hash, interests, created_at FROM users WHERE username = ?`

	var (
		u         models.UserAccount
		interests string
		createdAt string
	)
	err := r.db.QueryRowContext(ctx, query, userName).Scan(&u.UserName, &u.PasswordHash, &interests, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if u.Interests, err = decodeInterests(interests); err != nil {
		return nil, err
	}
	u.CreatedAt = parseTimestamp(createdAt)
	return &u, nil
}

func (r *SQLiteRepository) SetInterests(ctx context.Context, userName string, interests []string) error {
	encoded, err := encodeInterests(interests)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `UPDATE users SET interests = ? WHERE username = ?`, encoded, userName)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *SQLiteRepository) GetInterests(ctx context.Context, userName string) ([]string, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT interests FROM users WHERE username = ?`, userName).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return decodeInterests(raw)
}

// Interests are stored as a JSON array so values may contain any character,
// commas included.
func encodeInterests(interests []string) (string, error) {
	b, err := json.Marshal(models.NormalizeInterests(interests))
	if err != nil {
		return "", fmt.Errorf("encode interests: %w", err)
	}
	return string(b), nil
}

func decodeInterests(raw string) ([]string, error) {
	out := []string{}
	if raw == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode interests: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

func isConstraintViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}

// parseTimestamp reads the created_at column; unparseable values yield the
// zero time since the column is informational only.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
