// Package mocks provides mock implementations for testing use cases.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	vaultDomain "github.com/allisson/credvault/internal/vault/domain"
)

// MockContainerRepository is a mock implementation of ContainerRepository for testing.
type MockContainerRepository struct {
	mock.Mock
}

// GetOrCreate mocks the GetOrCreate method of ContainerRepository.
func (m *MockContainerRepository) GetOrCreate(
	ctx context.Context,
	organizationID, userID uuid.UUID,
) (*vaultDomain.Container, error) {
	args := m.Called(ctx, organizationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vaultDomain.Container), args.Error(1)
}

// MockCredentialRepository is a mock implementation of CredentialRepository for testing.
type MockCredentialRepository struct {
	mock.Mock
}

// Create mocks the Create method of CredentialRepository.
func (m *MockCredentialRepository) Create(ctx context.Context, credential *vaultDomain.Credential) error {
	args := m.Called(ctx, credential)
	return args.Error(0)
}

// Query mocks the Query method of CredentialRepository.
func (m *MockCredentialRepository) Query(
	ctx context.Context,
	organizationID, userID uuid.UUID,
	query vaultDomain.CredentialQuery,
) ([]*vaultDomain.Credential, error) {
	args := m.Called(ctx, organizationID, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vaultDomain.Credential), args.Error(1)
}

// ListByType mocks the ListByType method of CredentialRepository.
func (m *MockCredentialRepository) ListByType(
	ctx context.Context,
	organizationID, userID uuid.UUID,
	credentialType vaultDomain.CredentialType,
) ([]*vaultDomain.Credential, error) {
	args := m.Called(ctx, organizationID, userID, credentialType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vaultDomain.Credential), args.Error(1)
}

// UpdateFields mocks the UpdateFields method of CredentialRepository.
func (m *MockCredentialRepository) UpdateFields(
	ctx context.Context,
	credentialID uuid.UUID,
	encryptedFields []byte,
) error {
	args := m.Called(ctx, credentialID, encryptedFields)
	return args.Error(0)
}

// DeleteByID mocks the DeleteByID method of CredentialRepository.
func (m *MockCredentialRepository) DeleteByID(ctx context.Context, credentialID uuid.UUID) error {
	args := m.Called(ctx, credentialID)
	return args.Error(0)
}
