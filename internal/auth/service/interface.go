// Package service provides the permission gate consumed by the vault.
// Policy evaluation lives in an external authorization service; this package
// only asks the question and treats every ambiguity as a denial.
package service

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/allisson/credvault/internal/auth/domain"
)

// PermissionChecker answers whether an actor may operate on an organization's vault.
//
// Implementations must be fail-closed: a transport failure, timeout, or
// malformed response is reported as an error and callers treat it as a denial.
type PermissionChecker interface {
	Check(ctx context.Context, actor *authDomain.Actor, organizationID uuid.UUID) (bool, error)
}
