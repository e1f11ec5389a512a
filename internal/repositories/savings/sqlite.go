package savings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ledgerkeeper/internal/common"
	"github.com/dmitrijs2005/ledgerkeeper/internal/dbx"
	"github.com/dmitrijs2005/ledgerkeeper/internal/models"
	"github.com/dmitrijs2005/ledgerkeeper/internal/timex"
	"github.com/shopspring/decimal"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Append(ctx context.Context, amount decimal.Decimal, date time.Time) (models.SavingsSnapshot, error) {
	date = timex.Date(date)
	res, err := r.db.ExecContext(ctx, `INSERT INTO savings (amount, date) VALUES (?, ?)`,
		amount.String(), timex.FormatDate(date))
	if err != nil {
		return models.SavingsSnapshot{}, fmt.Errorf("failed to insert savings: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.SavingsSnapshot{}, fmt.Errorf("failed to get savings id: %w", err)
	}
	return models.SavingsSnapshot{ID: models.RecordID(id), Amount: amount, Date: date}, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.SavingsSnapshot, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, amount, date FROM savings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select savings: %w", err)
	}
	defer rows.Close()

	result := []models.SavingsSnapshot{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Latest(ctx context.Context) (*models.SavingsSnapshot, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, amount, date FROM savings ORDER BY id DESC LIMIT 1`)
	item, err := scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return &item, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (models.SavingsSnapshot, error) {
	var (
		item models.SavingsSnapshot
		date string
	)
	if err := s.Scan(&item.ID, &item.Amount, &date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return item, err
		}
		return item, fmt.Errorf("failed to scan savings: %w", err)
	}
	d, err := timex.ParseDate(date)
	if err != nil {
		return item, fmt.Errorf("savings %d: %w", item.ID, err)
	}
	item.Date = d
	return item, nil
}
