// Package mocks provides mock implementations for testing authorization consumers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/credvault/internal/auth/domain"
)

// MockPermissionChecker is a mock implementation of PermissionChecker for testing.
type MockPermissionChecker struct {
	mock.Mock
}

// Check mocks the Check method of PermissionChecker.
func (m *MockPermissionChecker) Check(
	ctx context.Context,
	actor *authDomain.Actor,
	organizationID uuid.UUID,
) (bool, error) {
	args := m.Called(ctx, actor, organizationID)
	return args.Bool(0), args.Error(1)
}
