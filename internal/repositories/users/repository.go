// Package users persists accounts in the shared credential registry.
package users

import (
	"context"

	"github.com/dmitrijs2005/ledgerkeeper/internal/models"
)

// Repository describes registry operations on user accounts.
type Repository interface {
	// Create inserts a new account. A taken username yields
	// common.ErrorDuplicateUsername.
	Create(ctx context.Context, user *models.UserAccount) error

	// GetByUserName returns the account or common.ErrorNotFound.
	GetByUserName(ctx context.Context, userName string) (*models.UserAccount, error)

	// SetInterests replaces the stored interest set wholesale.
	SetInterests(ctx context.Context, userName string, interests []string) error

	// GetInterests returns the stored interests in their saved order.
	GetInterests(ctx context.Context, userName string) ([]string, error)
}
