package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/credvault/internal/errors"
)

func TestParseOrderBy(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		expected  OrderBy
		expectErr bool
	}{
		{
			name:     "empty uses default",
			raw:      "",
			expected: OrderBy{Column: "created_at", Direction: OrderAsc},
		},
		{
			name:     "column only defaults to asc",
			raw:      "title",
			expected: OrderBy{Column: "title", Direction: OrderAsc},
		},
		{
			name:     "column and direction",
			raw:      "title:desc",
			expected: OrderBy{Column: "title", Direction: OrderDesc},
		},
		{
			name:     "camel case alias",
			raw:      "createdAt:desc",
			expected: OrderBy{Column: "created_at", Direction: OrderDesc},
		},
		{
			name:     "credential type alias",
			raw:      "credentialType:asc",
			expected: OrderBy{Column: "credential_type", Direction: OrderAsc},
		},
		{
			name:      "unknown column",
			raw:       "encrypted_fields:asc",
			expectErr: true,
		},
		{
			name:      "unknown direction",
			raw:       "title:sideways",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOrderBy(tt.raw)
			if tt.expectErr {
				require.Error(t, err)
				assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNewCredentialQuery_Defaults(t *testing.T) {
	query := NewCredentialQuery()

	assert.Equal(t, 5, query.Limit)
	assert.Equal(t, 0, query.Offset)
	assert.Equal(t, OrderBy{Column: "created_at", Direction: OrderAsc}, query.OrderBy)
	assert.True(t, query.Paged)
	assert.Empty(t, query.Type)
}
