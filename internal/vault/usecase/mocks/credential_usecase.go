package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/credvault/internal/auth/domain"
	vaultDomain "github.com/allisson/credvault/internal/vault/domain"
)

// MockCredentialUseCase is a mock implementation of CredentialUseCase for testing.
type MockCredentialUseCase struct {
	mock.Mock
}

// Create mocks the Create method of CredentialUseCase.
func (m *MockCredentialUseCase) Create(
	ctx context.Context,
	actor *authDomain.Actor,
	organizationID uuid.UUID,
	userID uuid.UUID,
	credentialType vaultDomain.CredentialType,
	title string,
	fields map[string]string,
) (*vaultDomain.Credential, error) {
	args := m.Called(ctx, actor, organizationID, userID, credentialType, title, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vaultDomain.Credential), args.Error(1)
}

// List mocks the List method of CredentialUseCase.
func (m *MockCredentialUseCase) List(
	ctx context.Context,
	actor *authDomain.Actor,
	organizationID uuid.UUID,
	userID uuid.UUID,
	query vaultDomain.CredentialQuery,
) ([]*vaultDomain.Credential, error) {
	args := m.Called(ctx, actor, organizationID, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vaultDomain.Credential), args.Error(1)
}

// UpdateFields mocks the UpdateFields method of CredentialUseCase.
func (m *MockCredentialUseCase) UpdateFields(
	ctx context.Context,
	actor *authDomain.Actor,
	organizationID uuid.UUID,
	userID uuid.UUID,
	credentialID uuid.UUID,
	fields map[string]string,
) error {
	args := m.Called(ctx, actor, organizationID, userID, credentialID, fields)
	return args.Error(0)
}

// Delete mocks the Delete method of CredentialUseCase.
func (m *MockCredentialUseCase) Delete(
	ctx context.Context,
	actor *authDomain.Actor,
	organizationID uuid.UUID,
	userID uuid.UUID,
	credentialID uuid.UUID,
) error {
	args := m.Called(ctx, actor, organizationID, userID, credentialID)
	return args.Error(0)
}
