package domain

import (
	"fmt"
	"strings"

	apperrors "github.com/allisson/credvault/internal/errors"
)

// Query defaults applied when the caller omits pagination parameters.
const (
	DefaultQueryLimit  = 5
	DefaultQueryOffset = 0
)

// OrderDirection is the sort direction of a credential listing.
type OrderDirection string

// Supported sort directions.
const (
	OrderAsc  OrderDirection = "asc"
	OrderDesc OrderDirection = "desc"
)

// OrderBy describes the sort column and direction of a credential listing.
type OrderBy struct {
	Column    string
	Direction OrderDirection
}

// DefaultOrderBy returns the default listing order: creation time ascending.
func DefaultOrderBy() OrderBy {
	return OrderBy{Column: "created_at", Direction: OrderAsc}
}

// orderColumns whitelists sortable columns, mapping accepted aliases to the
// underlying column name.
var orderColumns = map[string]string{
	"created_at":      "created_at",
	"createdAt":       "created_at",
	"title":           "title",
	"credential_type": "credential_type",
	"credentialType":  "credential_type",
}

// ParseOrderBy parses an order expression in "column:direction" form.
// The direction is optional and defaults to ascending; an empty expression
// yields the default order. Unknown columns or directions are rejected with
// ErrInvalidInput.
func ParseOrderBy(raw string) (OrderBy, error) {
	if raw == "" {
		return DefaultOrderBy(), nil
	}

	column, direction, _ := strings.Cut(raw, ":")

	mapped, ok := orderColumns[column]
	if !ok {
		return OrderBy{}, apperrors.Wrap(apperrors.ErrInvalidInput, fmt.Sprintf("unsupported order column %q", column))
	}

	if direction == "" {
		direction = string(OrderAsc)
	}
	switch OrderDirection(direction) {
	case OrderAsc, OrderDesc:
	default:
		return OrderBy{}, apperrors.Wrap(apperrors.ErrInvalidInput, fmt.Sprintf("unsupported order direction %q", direction))
	}

	return OrderBy{Column: mapped, Direction: OrderDirection(direction)}, nil
}

// CredentialQuery carries the filter, pagination, and ordering of a listing.
type CredentialQuery struct {
	// Type filters by credential type when non-empty.
	Type CredentialType
	// Limit is the page size.
	Limit int
	// Offset is the number of rows to skip.
	Offset int
	// OrderBy is the sort column and direction.
	OrderBy OrderBy
	// Paged is false when the caller supplied only a type filter and no
	// pagination parameters; listings then return all matching rows.
	Paged bool
}

// NewCredentialQuery returns a query with the default pagination applied.
func NewCredentialQuery() CredentialQuery {
	return CredentialQuery{
		Limit:   DefaultQueryLimit,
		Offset:  DefaultQueryOffset,
		OrderBy: DefaultOrderBy(),
		Paged:   true,
	}
}
