package domain

import (
	"github.com/allisson/credvault/internal/errors"
)

// Authorization error definitions.
var (
	// ErrPermissionDenied indicates the actor lacks organization permission,
	// or the authorization service could not confirm it (fail-closed).
	ErrPermissionDenied = errors.Wrap(errors.ErrForbidden, "permission denied")

	// ErrActorMissing indicates no authenticated actor was found in the request context.
	ErrActorMissing = errors.Wrap(errors.ErrUnauthorized, "actor missing")
)
