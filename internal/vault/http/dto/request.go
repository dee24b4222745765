// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/credvault/internal/validation"
)

// CreateCredentialRequest contains the parameters for creating a credential.
type CreateCredentialRequest struct {
	CredentialType string            `json:"credential_type" binding:"required"`
	Title          string            `json:"title" binding:"required"`
	Fields         map[string]string `json:"fields"`
}

// Validate checks if the create credential request is valid.
func (r *CreateCredentialRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CredentialType, validation.Required),
		validation.Field(&r.Title, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Fields, validation.NotNil),
	)
}

// UpdateCredentialFieldsRequest contains the replacement fields payload for a credential.
type UpdateCredentialFieldsRequest struct {
	Fields map[string]string `json:"fields"`
}

// Validate checks if the update credential fields request is valid.
func (r *UpdateCredentialFieldsRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Fields, validation.NotNil),
	)
}
