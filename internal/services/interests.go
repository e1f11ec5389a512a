package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/ledgerkeeper/internal/common"
	"github.com/dmitrijs2005/ledgerkeeper/internal/logging"
	"github.com/dmitrijs2005/ledgerkeeper/internal/models"
	"github.com/dmitrijs2005/ledgerkeeper/internal/repositories/repomanager"
)

// InterestRegistry keeps the topic tags attached to each account in the
// shared registry.
type InterestRegistry struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewInterestRegistry(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *InterestRegistry {
	return &InterestRegistry{db: db, repomanager: m, log: log}
}

// SetInterests replaces the interest set of userName. Input is normalized
// to an ordered set first. Unknown users yield common.ErrorNotFound.
func (r *InterestRegistry) SetInterests(ctx context.Context, userName string, interests []string) error {
	err := r.repomanager.Users(r.db).SetInterests(ctx, userName, models.NormalizeInterests(interests))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		r.log.Error(ctx, "set interests failed", "user", userName, "error", err)
		return common.Storage("set interests", err)
	}
	return nil
}

// GetInterests returns the stored interests of userName, or an empty slice
// when the user has none or does not exist.
func (r *InterestRegistry) GetInterests(ctx context.Context, userName string) ([]string, error) {
	list, err := r.repomanager.Users(r.db).GetInterests(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return []string{}, nil
		}
		return nil, common.Storage("get interests", err)
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}
