// Package expenses persists a tenant's expense records.
package expenses

import (
	"context"

	"github.com/dmitrijs2005/ledgerkeeper/internal/models"
	"github.com/shopspring/decimal"
)

// Repository describes CRUD operations over the expenses table of one
// tenant store.
type Repository interface {
	// Insert stores rec (ID ignored) and returns the assigned id.
	Insert(ctx context.Context, rec models.ExpenseRecord) (models.RecordID, error)

	// Update and Delete return common.ErrorNotFound when id does not exist.
	Update(ctx context.Context, rec models.ExpenseRecord) error
	Delete(ctx context.Context, id models.RecordID) error

	// List returns all records in storage order.
	List(ctx context.Context) ([]models.ExpenseRecord, error)

	Total(ctx context.Context) (decimal.Decimal, error)
}
