package income

import (
	"context"
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

func (r *SQLiteRepository) Insert(ctx context.Context, amount decimal.Decimal, date time.Time) (models.RecordID, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO income (amount, date) VALUES (?, ?)`,
		amount.String(), timex.FormatDate(date))
	if err != nil {
		return 0, fmt.Errorf("failed to insert income: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get income id: %w", err)
	}
	return models.RecordID(id), nil
}

func (r *SQLiteRepository) Update(ctx context.Context, rec models.IncomeRecord) error {
	res, err := r.db.ExecContext(ctx, `UPDATE income SET amount = ?, date = ? WHERE id = ?`,
		rec.Amount.String(), timex.FormatDate(rec.Date), int64(rec.ID))
	if err != nil {
		return fmt.Errorf("failed to update income: %w", err)
	}
	return expectOne(res.RowsAffected())
}

func (r *SQLiteRepository) Delete(ctx context.Context, id models.RecordID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM income WHERE id = ?`, int64(id))
	if err != nil {
		return fmt.Errorf("failed to delete income: %w", err)
	}
	return expectOne(res.RowsAffected())
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.IncomeRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, amount, date FROM income ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to select income: %w", err)
	}
	defer rows.Close()

	result := []models.IncomeRecord{}
	for rows.Next() {
		var (
			item models.IncomeRecord
			date string
		)
		if err := rows.Scan(&item.ID, &item.Amount, &date); err != nil {
			return nil, fmt.Errorf("failed to scan income: %w", err)
		}
		if item.Date, err = timex.ParseDate(date); err != nil {
			return nil, fmt.Errorf("income %d: %w", item.ID, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Total(ctx context.Context) (decimal.Decimal, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT amount FROM income`)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to select income amounts: %w", err)
	}
	defer rows.Close()

	total := decimal.Zero
	for rows.Next() {
		var amount decimal.Decimal
		if err := rows.Scan(&amount); err != nil {
			return decimal.Zero, fmt.Errorf("failed to scan income amount: %w", err)
		}
		total = total.Add(amount)
	}
	if err := rows.Err(); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func expectOne(n int64, err error) error {
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
