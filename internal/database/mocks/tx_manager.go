// Package mocks provides mock implementations for testing transaction consumers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTxManager is a mock implementation of TxManager for testing.
type MockTxManager struct {
	mock.Mock
}

// WithTx mocks the WithTx method of TxManager.
func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

// PassthroughTxManager runs the callback directly without a transaction.
// Useful where the test asserts repository interactions, not commit behavior.
type PassthroughTxManager struct{}

// WithTx invokes fn with the unmodified context.
func (p *PassthroughTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
