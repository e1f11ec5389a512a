// Package services contains the ledger's business logic. This file
// implements CredentialStore, which registers and authenticates users
// against the shared registry and issues session tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/ledgerkeeper/internal/auth"
	"github.com/dmitrijs2005/ledgerkeeper/internal/common"
	"github.com/dmitrijs2005/ledgerkeeper/internal/config"
	"github.com/dmitrijs2005/ledgerkeeper/internal/logging"
	"github.com/dmitrijs2005/ledgerkeeper/internal/models"
	"github.com/dmitrijs2005/ledgerkeeper/internal/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// generateHash is bcrypt.GenerateFromPassword; tests replace it.
var generateHash = bcrypt.GenerateFromPassword

// Provisioner guarantees a tenant's private store exists.
type Provisioner interface {
	Ensure(ctx context.Context, userName string) error
}

// CredentialStore provides:
// - Register: create an account and its tenant store
// - Authenticate: check a password without revealing whether the user exists
// - Login / Resolve: issue and verify session tokens
type CredentialStore struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tenants     Provisioner
	log         logging.Logger
	cost        int
	secret      []byte
	sessionTTL  time.Duration

	dummyOnce sync.Once
	dummyHash []byte
}

// NewCredentialStore builds a CredentialStore over the registry handle db.
func NewCredentialStore(db *sql.DB, m repomanager.RepositoryManager, tenants Provisioner, cfg *config.Config, log logging.Logger) *CredentialStore {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &CredentialStore{
		db:          db,
		repomanager: m,
		tenants:     tenants,
		log:         log,
		cost:        cost,
		secret:      []byte(cfg.SecretKey),
		sessionTTL:  cfg.SessionTTL,
	}
}

// Register creates userName with a salted bcrypt hash of password and an
// empty interest set, then provisions the tenant store. The password bytes
// are used in place and may be wiped by the caller afterwards.
//
// Errors: common.ErrorInvalidPassword for an empty or over-long password,
// common.ErrorDuplicateUsername when the name is taken, common.ErrorStorage
// otherwise. If only provisioning fails the account stays registered and
// the store is created on the next login.
func (s *CredentialStore) Register(ctx context.Context, userName string, password []byte) error {
	if userName == "" {
		return common.Invalid("username is required")
	}
	if len(password) == 0 {
		return common.ErrorInvalidPassword
	}

	repo := s.repomanager.Users(s.db)

	_, err := repo.GetByUserName(ctx, userName)
	switch {
	case err == nil:
		return common.ErrorDuplicateUsername
	case !errors.Is(err, common.ErrorNotFound):
		return common.Storage("lookup user", err)
	}

	hash, err := generateHash(password, s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return common.ErrorInvalidPassword
		}
		return common.Storage("hash password", err)
	}

	user := &models.UserAccount{UserName: userName, PasswordHash: hash, Interests: []string{}}
	if err := repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorDuplicateUsername) {
			return err
		}
		return common.Storage("create user", err)
	}
	s.log.Info(ctx, "user registered", "user", userName)

	if err := s.tenants.Ensure(ctx, userName); err != nil {
		s.log.Error(ctx, "tenant provisioning failed", "user", userName, "error", err)
		return err
	}
	return nil
}

// Authenticate reports whether password matches the stored hash of
// userName. Unknown users and wrong passwords are indistinguishable, both
// in result and in the bcrypt work performed.
func (s *CredentialStore) Authenticate(ctx context.Context, userName string, password []byte) bool {
	ok, err := s.verify(ctx, userName, password)
	if err != nil {
		s.log.Error(ctx, "authentication lookup failed", "user", userName, "error", err)
		return false
	}
	return ok
}

// Login authenticates, makes sure the tenant store exists, and returns a
// session token for userName.
func (s *CredentialStore) Login(ctx context.Context, userName string, password []byte) (string, error) {
	ok, err := s.verify(ctx, userName, password)
	if err != nil {
		return "", err
	}
	if !ok {
		s.log.Warn(ctx, "login rejected", "user", userName)
		return "", common.ErrorInvalidCredentials
	}

	if err := s.tenants.Ensure(ctx, userName); err != nil {
		return "", err
	}

	token, err := auth.GenerateToken(userName, s.secret, s.sessionTTL)
	if err != nil {
		return "", err
	}
	s.log.Info(ctx, "user logged in", "user", userName)
	return token, nil
}

// Resolve returns the username a session token was issued to.
func (s *CredentialStore) Resolve(token string) (string, error) {
	return auth.GetUserNameFromToken(token, s.secret)
}

func (s *CredentialStore) verify(ctx context.Context, userName string, password []byte) (bool, error) {
	user, err := s.repomanager.Users(s.db).GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.getDummyHash(), password)
			return false, nil
		}
		return false, common.Storage("lookup user", err)
	}
	return bcrypt.CompareHashAndPassword(user.PasswordHash, password) == nil, nil
}

// getDummyHash returns a hash of random bytes at the configured cost, so a
// lookup for an unknown user costs as much as a real comparison.
func (s *CredentialStore) getDummyHash() []byte {
	s.dummyOnce.Do(func() {
		pw, _ := common.MakeRandHexString(32)
		h, err := bcrypt.GenerateFromPassword([]byte(pw), s.cost)
		if err != nil {
			h = []byte("$2a$10$invalidinvalidinvalidinvalidinvalidinvalidinvalidinva")
		}
		s.dummyHash = h
	})
	return s.dummyHash
}
