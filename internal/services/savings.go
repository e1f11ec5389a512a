package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/ledgerkeeper/internal/common"
	"github.com/dmitrijs2005/ledgerkeeper/internal/dbx"
	"github.com/dmitrijs2005/ledgerkeeper/internal/models"
	"github.com/dmitrijs2005/ledgerkeeper/internal/repositories/repomanager"
)

// TenantStore runs work against one tenant's store under that tenant's lock.
type TenantStore interface {
	WithTx(ctx context.Context, userName string, fn func(ctx context.Context, tx dbx.DBTX) error) error
}

// SavingsAggregator derives total income minus total expenses from the raw
// ledger and appends it as a new snapshot. The figure is always recomputed
// from every record, never adjusted incrementally.
type SavingsAggregator struct {
	repomanager repomanager.RepositoryManager
	tenants     TenantStore
	clock       func() time.Time
}

func NewSavingsAggregator(m repomanager.RepositoryManager, tenants TenantStore, clock func() time.Time) *SavingsAggregator {
	if clock == nil {
		clock = time.Now
	}
	return &SavingsAggregator{repomanager: m, tenants: tenants, clock: clock}
}

// Recompute appends a snapshot for userName in its own transaction.
func (a *SavingsAggregator) Recompute(ctx context.Context, userName string) (models.SavingsSnapshot, error) {
	var snap models.SavingsSnapshot
	err := a.tenants.WithTx(ctx, userName, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		snap, err = a.recompute(ctx, tx)
		return err
	})
	return snap, err
}

// recompute runs inside the caller's transaction so that an expense
// mutation and its snapshot commit together. The snapshot is dated with
// the recompute's own clock, which is defined even when no expense exists.
func (a *SavingsAggregator) recompute(ctx context.Context, tx dbx.DBTX) (models.SavingsSnapshot, error) {
	totalIncome, err := a.repomanager.Income(tx).Total(ctx)
	if err != nil {
		return models.SavingsSnapshot{}, common.Storage("sum income", err)
	}
	totalExpenses, err := a.repomanager.Expenses(tx).Total(ctx)
	if err != nil {
		return models.SavingsSnapshot{}, common.Storage("sum expenses", err)
	}

	snap, err := a.repomanager.Savings(tx).Append(ctx, totalIncome.Sub(totalExpenses), a.clock())
	if err != nil {
		return models.SavingsSnapshot{}, common.Storage("append savings", err)
	}
	return snap, nil
}
