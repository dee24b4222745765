package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/credvault/internal/auth/domain"
	"github.com/allisson/credvault/internal/metrics"
	vaultDomain "github.com/allisson/credvault/internal/vault/domain"
)

// credentialUseCaseWithMetrics decorates CredentialUseCase with metrics instrumentation.
type credentialUseCaseWithMetrics struct {
	next    CredentialUseCase
	metrics metrics.BusinessMetrics
}

// NewCredentialUseCaseWithMetrics wraps a CredentialUseCase with metrics recording.
func NewCredentialUseCaseWithMetrics(useCase CredentialUseCase, m metrics.BusinessMetrics) CredentialUseCase {
	return &credentialUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for credential creation operations.
func (c *credentialUseCaseWithMetrics) Create(
	ctx context.Context,
	actor *authDomain.Actor,
	organizationID uuid.UUID,
	userID uuid.UUID,
	credentialType vaultDomain.CredentialType,
	title string,
	fields map[string]string,
) (*vaultDomain.Credential, error) {
	start := time.Now()
	credential, err := c.next.Create(ctx, actor, organizationID, userID, credentialType, title, fields)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "vault", "credential_create", status)
	c.metrics.RecordDuration(ctx, "vault", "credential_create", time.Since(start), status)

	return credential, err
}

// List records metrics for credential listing operations.
func (c *credentialUseCaseWithMetrics) List(
	ctx context.Context,
	actor *authDomain.Actor,
	organizationID uuid.UUID,
	userID uuid.UUID,
	query vaultDomain.CredentialQuery,
) ([]*vaultDomain.Credential, error) {
	start := time.Now()
	credentials, err := c.next.List(ctx, actor, organizationID, userID, query)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "vault", "credential_list", status)
	c.metrics.RecordDuration(ctx, "vault", "credential_list", time.Since(start), status)

	return credentials, err
}

// UpdateFields records metrics for credential update operations.
func (c *credentialUseCaseWithMetrics) UpdateFields(
	ctx context.Context,
	actor *authDomain.Actor,
	organizationID uuid.UUID,
	userID uuid.UUID,
	credentialID uuid.UUID,
	fields map[string]string,
) error {
	start := time.Now()
	err := c.next.UpdateFields(ctx, actor, organizationID, userID, credentialID, fields)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "vault", "credential_update", status)
	c.metrics.RecordDuration(ctx, "vault", "credential_update", time.Since(start), status)

	return err
}

// Delete records metrics for credential deletion operations.
func (c *credentialUseCaseWithMetrics) Delete(
	ctx context.Context,
	actor *authDomain.Actor,
	organizationID uuid.UUID,
	userID uuid.UUID,
	credentialID uuid.UUID,
) error {
	start := time.Now()
	err := c.next.Delete(ctx, actor, organizationID, userID, credentialID)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "vault", "credential_delete", status)
	c.metrics.RecordDuration(ctx, "vault", "credential_delete", time.Since(start), status)

	return err
}
