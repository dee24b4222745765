// Package repository implements data persistence for the credential vault.
// Repositories support both PostgreSQL and MySQL; credentials are stored with
// their fields payload already encrypted by the use case layer.
package repository

import (
	"fmt"

	apperrors "github.com/allisson/credvault/internal/errors"
)

// wrapStorage marks a driver error as a storage failure while keeping the
// original cause in the chain.
func wrapStorage(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", message, apperrors.ErrStorage, err)
}
