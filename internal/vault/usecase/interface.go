// Package usecase defines the interfaces and implementations for credential
// vault use cases. Use cases orchestrate repositories, the root key keeper,
// and the permission checker to implement the vault's business logic.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/allisson/credvault/internal/auth/domain"
	vaultDomain "github.com/allisson/credvault/internal/vault/domain"
)

// ContainerRepository defines the interface for Container persistence operations.
type ContainerRepository interface {
	GetOrCreate(ctx context.Context, organizationID, userID uuid.UUID) (*vaultDomain.Container, error)
}

// CredentialRepository defines the interface for Credential persistence operations.
type CredentialRepository interface {
	Create(ctx context.Context, credential *vaultDomain.Credential) error
	Query(ctx context.Context, organizationID, userID uuid.UUID, query vaultDomain.CredentialQuery) ([]*vaultDomain.Credential, error)
	ListByType(ctx context.Context, organizationID, userID uuid.UUID, credentialType vaultDomain.CredentialType) ([]*vaultDomain.Credential, error)
	UpdateFields(ctx context.Context, credentialID uuid.UUID, encryptedFields []byte) error
	DeleteByID(ctx context.Context, credentialID uuid.UUID) error
}

// CredentialUseCase defines the interface for credential vault business logic.
//
// Every operation takes the acting principal and re-checks its organization
// permission before touching storage; the permission decorator enforces this.
type CredentialUseCase interface {
	// Create stores a new credential of the given type for the (organization,
	// user) pair, creating the user's container on first use.
	Create(
		ctx context.Context,
		actor *authDomain.Actor,
		organizationID uuid.UUID,
		userID uuid.UUID,
		credentialType vaultDomain.CredentialType,
		title string,
		fields map[string]string,
	) (*vaultDomain.Credential, error)

	// List returns the caller's credentials with their fields decrypted.
	// A decryption or deserialization failure on any record fails the call.
	List(
		ctx context.Context,
		actor *authDomain.Actor,
		organizationID uuid.UUID,
		userID uuid.UUID,
		query vaultDomain.CredentialQuery,
	) ([]*vaultDomain.Credential, error)

	// UpdateFields re-encrypts and replaces the fields payload of a
	// credential; type, title, and timestamps stay untouched.
	UpdateFields(
		ctx context.Context,
		actor *authDomain.Actor,
		organizationID uuid.UUID,
		userID uuid.UUID,
		credentialID uuid.UUID,
		fields map[string]string,
	) error

	// Delete removes a credential by id; deleting an absent credential
	// succeeds.
	Delete(
		ctx context.Context,
		actor *authDomain.Actor,
		organizationID uuid.UUID,
		userID uuid.UUID,
		credentialID uuid.UUID,
	) error
}
