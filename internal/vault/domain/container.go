package domain

import (
	"time"

	"github.com/google/uuid"
)

// Container is the per-user secret container that scopes credentials to an
// (organization, user) pair. Exactly one container exists per pair.
type Container struct {
	// ID is the unique identifier of the container.
	ID uuid.UUID
	// OrganizationID is the organization the container belongs to.
	OrganizationID uuid.UUID
	// UserID is the user the container belongs to.
	UserID uuid.UUID
	// CreatedAt is the UTC timestamp when the container was created.
	CreatedAt time.Time
}
