// Package income persists a tenant's income records.
package income

import (
	"context"
	"time"

	"github.com/dmitrijs2005/ledgerkeeper/internal/models"
	"github.com/shopspring/decimal"
)

// Repository describes CRUD operations over the income table of one tenant
// store. Amount validation happens in the service layer.
type Repository interface {
	Insert(ctx context.Context, amount decimal.Decimal, date time.Time) (models.RecordID, error)

	// Update and Delete return common.ErrorNotFound when id does not exist.
	Update(ctx context.Context, rec models.IncomeRecord) error
	Delete(ctx context.Context, id models.RecordID) error

	// List returns all records, newest date first.
	List(ctx context.Context) ([]models.IncomeRecord, error)

	// Total sums every amount; zero for an empty table.
	Total(ctx context.Context) (decimal.Decimal, error)
}
