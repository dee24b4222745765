package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/allisson/credvault/internal/auth/domain"
	apperrors "github.com/allisson/credvault/internal/errors"
	"github.com/allisson/credvault/internal/httputil"
)

// Identity headers set by the upstream gateway.
const (
	HeaderActorType       = "X-Actor-Type"
	HeaderActorID         = "X-Actor-Id"
	HeaderActorAuthMethod = "X-Actor-Auth-Method"
	HeaderOrgID           = "X-Org-Id"
)

// ActorMiddleware creates a Gin middleware that extracts the actor identity
// from the request headers and stores it in the request context.
// Requests with missing or malformed identity headers are rejected with 401.
func ActorMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := actorFromHeaders(c)
		if err != nil {
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithActor(c.Request.Context(), actor)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func actorFromHeaders(c *gin.Context) (*authDomain.Actor, error) {
	actorType := authDomain.ActorType(c.GetHeader(HeaderActorType))
	if !actorType.IsValid() {
		return nil, apperrors.Wrap(authDomain.ErrActorMissing, "invalid actor type")
	}

	actorID, err := uuid.Parse(c.GetHeader(HeaderActorID))
	if err != nil {
		return nil, apperrors.Wrap(authDomain.ErrActorMissing, "invalid actor id")
	}

	authMethod := authDomain.AuthMethod(c.GetHeader(HeaderActorAuthMethod))
	if !authMethod.IsValid() {
		return nil, apperrors.Wrap(authDomain.ErrActorMissing, "invalid actor auth method")
	}

	orgID, err := uuid.Parse(c.GetHeader(HeaderOrgID))
	if err != nil {
		return nil, apperrors.Wrap(authDomain.ErrActorMissing, "invalid organization id")
	}

	return &authDomain.Actor{
		Type:       actorType,
		ID:         actorID,
		AuthMethod: authMethod,
		OrgID:      orgID,
	}, nil
}
