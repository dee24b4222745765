// Package mocks provides mock implementations for testing metrics consumers.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockBusinessMetrics is a mock implementation of BusinessMetrics for testing.
type MockBusinessMetrics struct {
	mock.Mock
}

// RecordOperation mocks the RecordOperation method of BusinessMetrics.
func (m *MockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

// RecordDuration mocks the RecordDuration method of BusinessMetrics.
func (m *MockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}
