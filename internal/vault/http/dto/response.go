package dto

import (
	"time"

	vaultDomain "github.com/allisson/credvault/internal/vault/domain"
)

// CredentialResponse represents a credential in API responses.
// The fields map holds decrypted values and must only travel over HTTPS.
type CredentialResponse struct {
	ID             string            `json:"id"`
	CredentialType string            `json:"credential_type"`
	Title          string            `json:"title"`
	Fields         map[string]string `json:"fields,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

// StatusResponse is the minimal acknowledgement body for write operations.
type StatusResponse struct {
	Status string `json:"status"`
}

// ListCredentialsResponse wraps a credential listing.
type ListCredentialsResponse struct {
	Status      string               `json:"status"`
	Credentials []CredentialResponse `json:"credentials"`
}

// MapCredentialToResponse converts a domain credential to an API response.
func MapCredentialToResponse(credential *vaultDomain.Credential) CredentialResponse {
	return CredentialResponse{
		ID:             credential.ID.String(),
		CredentialType: string(credential.Type),
		Title:          credential.Title,
		Fields:         credential.Fields,
		CreatedAt:      credential.CreatedAt,
	}
}

// MapCredentialsToListResponse converts domain credentials to a listing response.
// An empty listing yields an empty array, never null.
func MapCredentialsToListResponse(credentials []*vaultDomain.Credential) ListCredentialsResponse {
	items := make([]CredentialResponse, 0, len(credentials))
	for _, credential := range credentials {
		items = append(items, MapCredentialToResponse(credential))
	}
	return ListCredentialsResponse{
		Status:      "success",
		Credentials: items,
	}
}
