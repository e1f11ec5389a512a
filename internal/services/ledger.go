package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/ledgerkeeper/internal/common"
	"github.com/dmitrijs2005/ledgerkeeper/internal/dbx"
	"github.com/dmitrijs2005/ledgerkeeper/internal/logging"
	"github.com/dmitrijs2005/ledgerkeeper/internal/models"
	"github.com/dmitrijs2005/ledgerkeeper/internal/repositories/repomanager"
	"github.com/dmitrijs2005/ledgerkeeper/internal/timex"
	"github.com/shopspring/decimal"
)

// Ledger is the per-tenant income and expense book. The tenant argument of
// every method is the username resolved from the caller's session; it is
// trusted as is.
//
// Validation failures are returned before any store is opened. Every
// expense mutation appends exactly one savings snapshot in the same
// transaction, so a failed recompute also undoes the mutation.
type Ledger struct {
	repomanager repomanager.RepositoryManager
	tenants     TenantStore
	savings     *SavingsAggregator
	log         logging.Logger
}

func NewLedger(m repomanager.RepositoryManager, tenants TenantStore, savings *SavingsAggregator, log logging.Logger) *Ledger {
	return &Ledger{repomanager: m, tenants: tenants, savings: savings, log: log}
}

func (l *Ledger) AddIncome(ctx context.Context, tenant string, amount decimal.Decimal, date time.Time) (models.RecordID, error) {
	if err := validateEntry(amount, date); err != nil {
		return 0, err
	}

	var id models.RecordID
	err := l.tenants.WithTx(ctx, tenant, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		id, err = l.repomanager.Income(tx).Insert(ctx, amount, date)
		return classify("insert income", err)
	})
	if err != nil {
		return 0, err
	}
	l.log.Debug(ctx, "income added", "user", tenant, "id", id)
	return id, nil
}

// UpdateIncome returns common.ErrorNotFound when id does not exist.
func (l *Ledger) UpdateIncome(ctx context.Context, tenant string, id models.RecordID, amount decimal.Decimal, date time.Time) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := validateEntry(amount, date); err != nil {
		return err
	}

	return l.tenants.WithTx(ctx, tenant, func(ctx context.Context, tx dbx.DBTX) error {
		rec := models.IncomeRecord{ID: id, Amount: amount, Date: date}
		return classify("update income", l.repomanager.Income(tx).Update(ctx, rec))
	})
}

// DeleteIncome returns common.ErrorNotFound when id does not exist.
func (l *Ledger) DeleteIncome(ctx context.Context, tenant string, id models.RecordID) error {
	if err := validateID(id); err != nil {
		return err
	}

	return l.tenants.WithTx(ctx, tenant, func(ctx context.Context, tx dbx.DBTX) error {
		return classify("delete income", l.repomanager.Income(tx).Delete(ctx, id))
	})
}

// ListIncome returns the tenant's income, newest date first.
func (l *Ledger) ListIncome(ctx context.Context, tenant string) ([]models.IncomeRecord, error) {
	var list []models.IncomeRecord
	err := l.tenants.WithTx(ctx, tenant, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		list, err = l.repomanager.Income(tx).List(ctx)
		return classify("list income", err)
	})
	return list, err
}

func (l *Ledger) AddExpense(ctx context.Context, tenant string, amount decimal.Decimal, category string, date time.Time) (models.RecordID, error) {
	if err := validateExpense(amount, category, date); err != nil {
		return 0, err
	}

	var id models.RecordID
	err := l.mutateExpenses(ctx, tenant, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		id, err = l.repomanager.Expenses(tx).Insert(ctx, models.ExpenseRecord{Amount: amount, Category: category, Date: date})
		return classify("insert expense", err)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateExpense returns common.ErrorNotFound when id does not exist.
func (l *Ledger) UpdateExpense(ctx context.Context, tenant string, id models.RecordID, amount decimal.Decimal, category string, date time.Time) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := validateExpense(amount, category, date); err != nil {
		return err
	}

	return l.mutateExpenses(ctx, tenant, func(ctx context.Context, tx dbx.DBTX) error {
		rec := models.ExpenseRecord{ID: id, Amount: amount, Category: category, Date: date}
		return classify("update expense", l.repomanager.Expenses(tx).Update(ctx, rec))
	})
}

// DeleteExpense returns common.ErrorNotFound when id does not exist.
func (l *Ledger) DeleteExpense(ctx context.Context, tenant string, id models.RecordID) error {
	if err := validateID(id); err != nil {
		return err
	}

	return l.mutateExpenses(ctx, tenant, func(ctx context.Context, tx dbx.DBTX) error {
		return classify("delete expense", l.repomanager.Expenses(tx).Delete(ctx, id))
	})
}

// ListExpenses returns the tenant's expenses in storage order.
func (l *Ledger) ListExpenses(ctx context.Context, tenant string) ([]models.ExpenseRecord, error) {
	var list []models.ExpenseRecord
	err := l.tenants.WithTx(ctx, tenant, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		list, err = l.repomanager.Expenses(tx).List(ctx)
		return classify("list expenses", err)
	})
	return list, err
}

// ListSavings returns the snapshot history in insertion order.
func (l *Ledger) ListSavings(ctx context.Context, tenant string) ([]models.SavingsSnapshot, error) {
	var list []models.SavingsSnapshot
	err := l.tenants.WithTx(ctx, tenant, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		list, err = l.repomanager.Savings(tx).List(ctx)
		return classify("list savings", err)
	})
	return list, err
}

// CurrentSavings returns the newest snapshot, or common.ErrorNotFound when
// no expense has been recorded yet.
func (l *Ledger) CurrentSavings(ctx context.Context, tenant string) (models.SavingsSnapshot, error) {
	var snap models.SavingsSnapshot
	err := l.tenants.WithTx(ctx, tenant, func(ctx context.Context, tx dbx.DBTX) error {
		latest, err := l.repomanager.Savings(tx).Latest(ctx)
		if err != nil {
			return classify("latest savings", err)
		}
		snap = *latest
		return nil
	})
	return snap, err
}

// mutateExpenses runs fn and the savings recompute as one transaction.
func (l *Ledger) mutateExpenses(ctx context.Context, tenant string, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	err := l.tenants.WithTx(ctx, tenant, func(ctx context.Context, tx dbx.DBTX) error {
		if err := fn(ctx, tx); err != nil {
			return err
		}
		snap, err := l.savings.recompute(ctx, tx)
		if err != nil {
			return err
		}
		l.log.Debug(ctx, "savings recomputed", "user", tenant, "snapshot", snap.ID, "amount", snap.Amount.String())
		return nil
	})
	if err != nil && errors.Is(err, common.ErrorStorage) {
		l.log.Error(ctx, "expense mutation failed", "user", tenant, "error", err)
	}
	return err
}

func validateEntry(amount decimal.Decimal, date time.Time) error {
	if !amount.IsPositive() {
		return common.Invalid("amount must be positive")
	}
	if date.IsZero() {
		return common.Invalid("date is required")
	}
	if !timex.InRange(date) {
		return common.Invalid(fmt.Sprintf("date year must be between %d and %d", timex.MinYear, timex.MaxYear))
	}
	return nil
}

func validateExpense(amount decimal.Decimal, category string, date time.Time) error {
	if err := validateEntry(amount, date); err != nil {
		return err
	}
	if strings.TrimSpace(category) == "" {
		return common.Invalid("category is required")
	}
	return nil
}

func validateID(id models.RecordID) error {
	if id < 0 {
		return common.Invalid("id must not be negative")
	}
	return nil
}

// classify keeps lookup and validation errors as they are and marks
// everything else as a storage failure.
func classify(op string, err error) error {
	if err == nil || errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorValidation) {
		return err
	}
	return common.Storage(op, err)
}
