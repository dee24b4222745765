package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/credvault/internal/auth/domain"
	apperrors "github.com/allisson/credvault/internal/errors"
)

// checkPermissionPath is the authorization service endpoint for permission checks.
const checkPermissionPath = "/v1/permissions/check"

// checkPermissionRequest is the wire format sent to the authorization service.
type checkPermissionRequest struct {
	ActorType       string `json:"actor_type"`
	ActorID         string `json:"actor_id"`
	ActorAuthMethod string `json:"actor_auth_method"`
	ActorOrgID      string `json:"actor_org_id"`
	OrganizationID  string `json:"organization_id"`
}

// checkPermissionResponse is the wire format returned by the authorization service.
type checkPermissionResponse struct {
	Allowed bool `json:"allowed"`
}

// httpPermissionChecker implements PermissionChecker against a remote authorization service.
type httpPermissionChecker struct {
	baseURL string
	client  *http.Client
}

// NewHTTPPermissionChecker creates a PermissionChecker that calls the external
// authorization service over HTTP. The timeout bounds each check; an expired
// check is an error, which callers must treat as a denial.
func NewHTTPPermissionChecker(baseURL string, timeout time.Duration) PermissionChecker {
	return &httpPermissionChecker{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Check asks the authorization service whether the actor may operate on the
// organization's vault. Any transport or protocol failure is returned as an
// error wrapping ErrForbidden so the caller stays fail-closed.
func (h *httpPermissionChecker) Check(
	ctx context.Context,
	actor *authDomain.Actor,
	organizationID uuid.UUID,
) (bool, error) {
	payload := checkPermissionRequest{
		ActorType:       string(actor.Type),
		ActorID:         actor.ID.String(),
		ActorAuthMethod: string(actor.AuthMethod),
		ActorOrgID:      actor.OrgID.String(),
		OrganizationID:  organizationID.String(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to encode permission check request")
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		h.baseURL+checkPermissionPath,
		bytes.NewReader(body),
	)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to create permission check request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return false, apperrors.Wrap(err, "permission check request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return false, apperrors.Wrap(
			apperrors.ErrForbidden,
			fmt.Sprintf("permission check returned status %d", resp.StatusCode),
		)
	}

	var result checkPermissionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, apperrors.Wrap(err, "failed to decode permission check response")
	}

	return result.Allowed, nil
}
