// Package domain defines the actor model used for authorization checks.
//
// Authentication happens upstream (API gateway); this service only carries
// the authenticated actor's identity and re-checks its organization
// permission on every vault operation.
package domain

import (
	"github.com/google/uuid"
)

// ActorType identifies the kind of principal performing an operation.
type ActorType string

// Supported actor types.
const (
	ActorTypeUser     ActorType = "user"
	ActorTypeIdentity ActorType = "identity"
)

// IsValid returns true if the actor type is one of the supported values.
func (a ActorType) IsValid() bool {
	switch a {
	case ActorTypeUser, ActorTypeIdentity:
		return true
	}
	return false
}

// AuthMethod identifies how the actor was authenticated upstream.
type AuthMethod string

// Supported authentication methods.
const (
	AuthMethodJWT      AuthMethod = "jwt"
	AuthMethodAPIToken AuthMethod = "api-token"
)

// IsValid returns true if the auth method is one of the supported values.
func (a AuthMethod) IsValid() bool {
	switch a {
	case AuthMethodJWT, AuthMethodAPIToken:
		return true
	}
	return false
}

// Actor is the authenticated principal on whose behalf a vault operation runs.
type Actor struct {
	// Type is the kind of principal (user or machine identity).
	Type ActorType
	// ID is the unique identifier of the principal.
	ID uuid.UUID
	// AuthMethod is how the principal authenticated upstream.
	AuthMethod AuthMethod
	// OrgID is the organization the principal authenticated against.
	OrgID uuid.UUID
}
