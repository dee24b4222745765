package domain

import (
	"github.com/allisson/credvault/internal/errors"
)

// Vault-specific error definitions.
var (
	// ErrCredentialNotFound indicates no credential exists with the given id.
	ErrCredentialNotFound = errors.Wrap(errors.ErrNotFound, "credential not found")
	// ErrInvalidCredentialType indicates a credential type outside the supported set.
	ErrInvalidCredentialType = errors.Wrap(errors.ErrInvalidInput, "invalid credential type")
)
