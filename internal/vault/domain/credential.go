// Package domain defines the core domain models for the credential vault.
// Credentials are typed secrets scoped to a per-user container; their fields
// payload is envelope-encrypted with a process-wide root key before storage.
package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/allisson/credvault/internal/errors"
)

// CredentialType classifies the shape of a credential's fields payload.
type CredentialType string

// Supported credential types.
const (
	CredentialTypeWebLogin   CredentialType = "web_login"
	CredentialTypeCreditCard CredentialType = "credit_card"
	CredentialTypeSecureNote CredentialType = "secure_note"
)

// IsValid returns true if the credential type is one of the supported values.
func (c CredentialType) IsValid() bool {
	switch c {
	case CredentialTypeWebLogin, CredentialTypeCreditCard, CredentialTypeSecureNote:
		return true
	}
	return false
}

// Credential represents a typed secret stored inside a user's container.
type Credential struct {
	// ID is the unique identifier of the credential.
	ID uuid.UUID
	// ContainerID references the container this credential belongs to.
	ContainerID uuid.UUID
	// Type classifies the credential (web login, credit card, secure note).
	Type CredentialType
	// Title is the user-facing label; it is stored in plaintext.
	Title string
	// EncryptedFields is the root-key-encrypted fields payload as stored.
	EncryptedFields []byte
	// Fields holds the decrypted payload in memory only; never persisted.
	Fields map[string]string `json:"-"`
	// CreatedAt is the UTC timestamp when the credential was created.
	CreatedAt time.Time
}

// EncodeFields serializes a fields map to its canonical JSON form.
// Keys are emitted in sorted order, so equal maps encode identically.
func EncodeFields(fields map[string]string) ([]byte, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encode credential fields")
	}
	return data, nil
}

// DecodeFields deserializes a JSON fields payload back into a map.
func DecodeFields(data []byte) (map[string]string, error) {
	var fields map[string]string
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode credential fields")
	}
	return fields, nil
}
