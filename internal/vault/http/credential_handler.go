// Package http provides HTTP handlers for credential vault operations.
// Handlers stay thin: identity comes from the actor middleware, schema
// validation lives in the dto layer, and business rules live in the use case.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/allisson/credvault/internal/auth/domain"
	authHTTP "github.com/allisson/credvault/internal/auth/http"
	"github.com/allisson/credvault/internal/httputil"
	vaultDomain "github.com/allisson/credvault/internal/vault/domain"
	"github.com/allisson/credvault/internal/vault/http/dto"
	vaultUseCase "github.com/allisson/credvault/internal/vault/usecase"
	customValidation "github.com/allisson/credvault/internal/validation"
)

// CredentialHandler handles HTTP requests for credential vault operations.
type CredentialHandler struct {
	credentialUseCase vaultUseCase.CredentialUseCase
	logger            *slog.Logger
}

// NewCredentialHandler creates a new credential handler with required dependencies.
func NewCredentialHandler(
	credentialUseCase vaultUseCase.CredentialUseCase,
	logger *slog.Logger,
) *CredentialHandler {
	return &CredentialHandler{
		credentialUseCase: credentialUseCase,
		logger:            logger,
	}
}

// CreateHandler stores a new credential for the authenticated actor.
// POST /v1/user-credentials
// Returns 201 Created with the status acknowledgement.
func (h *CredentialHandler) CreateHandler(c *gin.Context) {
	actor, ok := authHTTP.GetActor(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrActorMissing, h.logger)
		return
	}

	var req dto.CreateCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	_, err := h.credentialUseCase.Create(
		c.Request.Context(),
		actor,
		actor.OrgID,
		actor.ID,
		vaultDomain.CredentialType(req.CredentialType),
		req.Title,
		req.Fields,
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.StatusResponse{Status: "success"})
}

// ListHandler retrieves the actor's credentials with decrypted fields.
// GET /v1/user-credentials?credential_type=...&limit=N&offset=N&order_by=column:direction
// Returns 200 OK with the credential listing. When only a type filter is
// supplied the listing is unpaginated; otherwise pagination defaults apply.
func (h *CredentialHandler) ListHandler(c *gin.Context) {
	actor, ok := authHTTP.GetActor(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrActorMissing, h.logger)
		return
	}

	credentialType := c.Query("credential_type")
	_, hasLimit := c.GetQuery("limit")
	_, hasOffset := c.GetQuery("offset")
	orderByRaw, hasOrderBy := c.GetQuery("order_by")

	query := vaultDomain.NewCredentialQuery()
	query.Type = vaultDomain.CredentialType(credentialType)
	query.Paged = credentialType == "" || hasLimit || hasOffset || hasOrderBy

	if query.Paged {
		offset, limit, err := httputil.ParsePagination(c)
		if err != nil {
			httputil.HandleValidationErrorGin(c, err, h.logger)
			return
		}
		query.Offset = offset
		query.Limit = limit

		orderBy, err := vaultDomain.ParseOrderBy(orderByRaw)
		if err != nil {
			httputil.HandleErrorGin(c, err, h.logger)
			return
		}
		query.OrderBy = orderBy
	}

	credentials, err := h.credentialUseCase.List(c.Request.Context(), actor, actor.OrgID, actor.ID, query)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCredentialsToListResponse(credentials))
}

// UpdateHandler replaces the fields payload of a credential.
// PUT /v1/user-credentials/:id
// Returns 200 OK with the status acknowledgement.
func (h *CredentialHandler) UpdateHandler(c *gin.Context) {
	actor, ok := authHTTP.GetActor(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrActorMissing, h.logger)
		return
	}

	credentialID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid credential id"), h.logger)
		return
	}

	var req dto.UpdateCredentialFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	err = h.credentialUseCase.UpdateFields(c.Request.Context(), actor, actor.OrgID, actor.ID, credentialID, req.Fields)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: "success"})
}

// DeleteHandler removes a credential; deleting an absent one still succeeds.
// DELETE /v1/user-credentials/:id
// Returns 204 No Content.
func (h *CredentialHandler) DeleteHandler(c *gin.Context) {
	actor, ok := authHTTP.GetActor(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrActorMissing, h.logger)
		return
	}

	credentialID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid credential id"), h.logger)
		return
	}

	if err := h.credentialUseCase.Delete(c.Request.Context(), actor, actor.OrgID, actor.ID, credentialID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}
