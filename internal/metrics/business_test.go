package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBusinessMetrics(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	businessMetrics, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)
	assert.NotNil(t, businessMetrics)
}

func TestBusinessMetrics_RecordOperation(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	businessMetrics, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)

	// Recording should not panic for any status
	businessMetrics.RecordOperation(context.Background(), "vault", "credential_create", "success")
	businessMetrics.RecordOperation(context.Background(), "vault", "credential_create", "error")
}

func TestBusinessMetrics_RecordDuration(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	businessMetrics, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)

	businessMetrics.RecordDuration(
		context.Background(),
		"vault",
		"credential_list",
		150*time.Millisecond,
		"success",
	)
}

func TestNoOpBusinessMetrics(t *testing.T) {
	noOp := NewNoOpBusinessMetrics()

	// No-op implementations should accept any input without side effects
	noOp.RecordOperation(context.Background(), "vault", "credential_delete", "success")
	noOp.RecordDuration(context.Background(), "vault", "credential_delete", time.Second, "success")
}
