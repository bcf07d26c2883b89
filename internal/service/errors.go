package service

import (
	"database/sql"
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrForbidden          = errors.New("operation not permitted")
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("conflicting state")
	ErrInvalid            = errors.New("invalid input")
)

// orNotFound translates a missing-row lookup into the service taxonomy.
func orNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
