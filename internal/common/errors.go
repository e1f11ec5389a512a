// Package common defines the sentinel errors shared by the ledger layers.
// Callers should use errors.Is to match these values; helpers below wrap a
// cause so both the sentinel and the underlying error stay reachable.
package common

import (
	"errors"
	"fmt"
)

var (
	// Credential errors.
	ErrorDuplicateUsername  = errors.New("username already exists")
	ErrorInvalidPassword    = errors.New("invalid password")
	ErrorInvalidCredentials = errors.New("invalid username or password")

	// Input and lookup errors.
	ErrorValidation = errors.New("validation error")
	ErrorNotFound   = errors.New("not found")

	// Underlying storage I/O or corruption.
	ErrorStorage = errors.New("storage error")

	// Session token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Invalid returns an ErrorValidation carrying a human-readable reason.
func Invalid(reason string) error {
	return fmt.Errorf("%w: %s", ErrorValidation, reason)
}

// Storage classifies err as a storage failure of operation op. A nil err
// yields nil. Errors that already carry ErrorStorage are returned unchanged.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrorStorage) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", op, ErrorStorage, err)
}
