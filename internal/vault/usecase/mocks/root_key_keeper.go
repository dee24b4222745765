package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRootKeyKeeper is a mock implementation of RootKeyKeeper for testing.
type MockRootKeyKeeper struct {
	mock.Mock
}

// Encrypt mocks the Encrypt method of RootKeyKeeper.
func (m *MockRootKeyKeeper) Encrypt(ctx context.Context, plaintext []byte) ([]byte, error) {
	args := m.Called(ctx, plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Decrypt mocks the Decrypt method of RootKeyKeeper.
func (m *MockRootKeyKeeper) Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error) {
	args := m.Called(ctx, ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Close mocks the Close method of RootKeyKeeper.
func (m *MockRootKeyKeeper) Close() error {
	args := m.Called()
	return args.Error(0)
}
