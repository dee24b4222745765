package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	authDomain "github.com/allisson/credvault/internal/auth/domain"
	authService "github.com/allisson/credvault/internal/auth/service"
	vaultDomain "github.com/allisson/credvault/internal/vault/domain"
)

// credentialUseCaseWithPermissions decorates CredentialUseCase with
// authorization enforcement. Every operation re-checks the actor's
// organization permission; a denial, a checker failure, or a missing actor
// all block the call before any storage interaction (fail closed).
type credentialUseCaseWithPermissions struct {
	next    CredentialUseCase
	checker authService.PermissionChecker
}

// NewCredentialUseCaseWithPermissions wraps a CredentialUseCase with permission checks.
func NewCredentialUseCaseWithPermissions(
	useCase CredentialUseCase,
	checker authService.PermissionChecker,
) CredentialUseCase {
	return &credentialUseCaseWithPermissions{
		next:    useCase,
		checker: checker,
	}
}

// Create checks the actor's permission before delegating.
func (c *credentialUseCaseWithPermissions) Create(
	ctx context.Context,
	actor *authDomain.Actor,
	organizationID uuid.UUID,
	userID uuid.UUID,
	credentialType vaultDomain.CredentialType,
	title string,
	fields map[string]string,
) (*vaultDomain.Credential, error) {
	if err := c.authorize(ctx, actor, organizationID); err != nil {
		return nil, err
	}
	return c.next.Create(ctx, actor, organizationID, userID, credentialType, title, fields)
}

// List checks the actor's permission before delegating.
func (c *credentialUseCaseWithPermissions) List(
	ctx context.Context,
	actor *authDomain.Actor,
	organizationID uuid.UUID,
	userID uuid.UUID,
	query vaultDomain.CredentialQuery,
) ([]*vaultDomain.Credential, error) {
	if err := c.authorize(ctx, actor, organizationID); err != nil {
		return nil, err
	}
	return c.next.List(ctx, actor, organizationID, userID, query)
}

// UpdateFields checks the actor's permission before delegating.
func (c *credentialUseCaseWithPermissions) UpdateFields(
	ctx context.Context,
	actor *authDomain.Actor,
	organizationID uuid.UUID,
	userID uuid.UUID,
	credentialID uuid.UUID,
	fields map[string]string,
) error {
	if err := c.authorize(ctx, actor, organizationID); err != nil {
		return err
	}
	return c.next.UpdateFields(ctx, actor, organizationID, userID, credentialID, fields)
}

// Delete checks the actor's permission before delegating.
func (c *credentialUseCaseWithPermissions) Delete(
	ctx context.Context,
	actor *authDomain.Actor,
	organizationID uuid.UUID,
	userID uuid.UUID,
	credentialID uuid.UUID,
) error {
	if err := c.authorize(ctx, actor, organizationID); err != nil {
		return err
	}
	return c.next.Delete(ctx, actor, organizationID, userID, credentialID)
}

// authorize resolves the permission check for an operation. The result is
// never cached across calls.
func (c *credentialUseCaseWithPermissions) authorize(
	ctx context.Context,
	actor *authDomain.Actor,
	organizationID uuid.UUID,
) error {
	if actor == nil {
		return authDomain.ErrActorMissing
	}

	allowed, err := c.checker.Check(ctx, actor, organizationID)
	if err != nil {
		return fmt.Errorf("%w: %w", authDomain.ErrPermissionDenied, err)
	}
	if !allowed {
		return authDomain.ErrPermissionDenied
	}

	return nil
}
