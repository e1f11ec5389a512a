// Package savings persists the append-only savings snapshot history of a
// tenant. There is deliberately no update or delete.
package savings

import (
	"context"
	"time"

	"github.com/dmitrijs2005/ledgerkeeper/internal/models"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Append(ctx context.Context, amount decimal.Decimal, date time.Time) (models.SavingsSnapshot, error)

	// List returns snapshots in insertion order.
	List(ctx context.Context) ([]models.SavingsSnapshot, error)

	// Latest returns the newest snapshot or common.ErrorNotFound.
	Latest(ctx context.Context) (*models.SavingsSnapshot, error)
}
