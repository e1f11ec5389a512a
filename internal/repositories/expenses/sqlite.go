package expenses

import (
	"context"
	"fmt"

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

func (r *SQLiteRepository) Insert(ctx context.Context, rec models.ExpenseRecord) (models.RecordID, error) {
	query := `INSERT INTO expenses (amount, category, date) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, rec.Amount.String(), rec.Category, timex.FormatDate(rec.Date))
	if err != nil {
		return 0, fmt.Errorf("failed to insert expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get expense id: %w", err)
	}
	return models.RecordID(id), nil
}

func (r *SQLiteRepository) Update(ctx context.Context, rec models.ExpenseRecord) error {
	query := `UPDATE expenses SET amount = ?, category = ?, date = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, rec.Amount.String(), rec.Category, timex.FormatDate(rec.Date), int64(rec.ID))
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
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

func (r *SQLiteRepository) Delete(ctx context.Context, id models.RecordID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, int64(id))
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
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

func (r *SQLiteRepository) List(ctx context.Context) ([]models.ExpenseRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, amount, category, date FROM expenses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select expenses: %w", err)
	}
	defer rows.Close()

	result := []models.ExpenseRecord{}
	for rows.Next() {
		var (
			item models.ExpenseRecord
			date string
		)
		if err := rows.Scan(&item.ID, &item.Amount, &item.Category, &date); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if item.Date, err = timex.ParseDate(date); err != nil {
			return nil, fmt.Errorf("expense %d: %w", item.ID, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Total re-reads every expense; the savings figure is always a full
// recompute, never a running adjustment.
func (r *SQLiteRepository) Total(ctx context.Context) (decimal.Decimal, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT amount FROM expenses`)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to select expense amounts: %w", err)
	}
	defer rows.Close()

	total := decimal.Zero
	for rows.Next() {
		var amount decimal.Decimal
		if err := rows.Scan(&amount); err != nil {
			return decimal.Zero, fmt.Errorf("failed to scan expense amount: %w", err)
		}
		total = total.Add(amount)
	}
	if err := rows.Err(); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
