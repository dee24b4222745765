package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/credvault/internal/auth/domain"
	authHTTP "github.com/allisson/credvault/internal/auth/http"
	cryptoDomain "github.com/allisson/credvault/internal/crypto/domain"
	vaultDomain "github.com/allisson/credvault/internal/vault/domain"
	"github.com/allisson/credvault/internal/vault/http/dto"
	vaultMocks "github.com/allisson/credvault/internal/vault/usecase/mocks"
)

func setupRouter(useCase *vaultMocks.MockCredentialUseCase, actor *authDomain.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewCredentialHandler(useCase, slog.Default())

	router := gin.New()
	if actor != nil {
		router.Use(func(c *gin.Context) {
			ctx := authHTTP.WithActor(c.Request.Context(), actor)
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
	router.GET("/v1/user-credentials", handler.ListHandler)
	router.POST("/v1/user-credentials", handler.CreateHandler)
	router.PUT("/v1/user-credentials/:id", handler.UpdateHandler)
	router.DELETE("/v1/user-credentials/:id", handler.DeleteHandler)
	return router
}

func handlerTestActor() *authDomain.Actor {
	return &authDomain.Actor{
		Type:       authDomain.ActorTypeUser,
		ID:         uuid.Must(uuid.NewV7()),
		AuthMethod: authDomain.AuthMethodJWT,
		OrgID:      uuid.Must(uuid.NewV7()),
	}
}

func TestCredentialHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		useCase := &vaultMocks.MockCredentialUseCase{}
		actor := handlerTestActor()
		router := setupRouter(useCase, actor)

		fields := map[string]string{"username": "alice", "password": "s3cr3t"}
		created := &vaultDomain.Credential{
			ID:        uuid.Must(uuid.NewV7()),
			Type:      vaultDomain.CredentialTypeWebLogin,
			Title:     "github",
			Fields:    fields,
			CreatedAt: time.Now().UTC(),
		}

		useCase.On("Create", mock.Anything, actor, actor.OrgID, actor.ID,
			vaultDomain.CredentialTypeWebLogin, "github", fields).
			Return(created, nil)

		body, err := json.Marshal(dto.CreateCredentialRequest{
			CredentialType: "web_login",
			Title:          "github",
			Fields:         fields,
		})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/user-credentials", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"status":"success"}`, w.Body.String())
		useCase.AssertExpectations(t)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		useCase := &vaultMocks.MockCredentialUseCase{}
		router := setupRouter(useCase, handlerTestActor())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/user-credentials", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		useCase.AssertNotCalled(t, "Create")
	})

	t.Run("MissingTitle", func(t *testing.T) {
		useCase := &vaultMocks.MockCredentialUseCase{}
		router := setupRouter(useCase, handlerTestActor())

		body := []byte(`{"credential_type":"web_login","title":"   ","fields":{}}`)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/user-credentials", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		useCase.AssertNotCalled(t, "Create")
	})

	t.Run("MissingActor", func(t *testing.T) {
		useCase := &vaultMocks.MockCredentialUseCase{}
		router := setupRouter(useCase, nil)

		body := []byte(`{"credential_type":"web_login","title":"github","fields":{}}`)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/user-credentials", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		useCase.AssertNotCalled(t, "Create")
	})
}

func TestCredentialHandler_List(t *testing.T) {
	t.Run("Success_Defaults", func(t *testing.T) {
		useCase := &vaultMocks.MockCredentialUseCase{}
		actor := handlerTestActor()
		router := setupRouter(useCase, actor)

		credentials := []*vaultDomain.Credential{
			{
				ID:        uuid.Must(uuid.NewV7()),
				Type:      vaultDomain.CredentialTypeWebLogin,
				Title:     "github",
				Fields:    map[string]string{"username": "alice"},
				CreatedAt: time.Now().UTC(),
			},
		}

		expectedQuery := vaultDomain.NewCredentialQuery()
		useCase.On("List", mock.Anything, actor, actor.OrgID, actor.ID, expectedQuery).
			Return(credentials, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/user-credentials", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListCredentialsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "success", response.Status)
		require.Len(t, response.Credentials, 1)
		assert.Equal(t, "github", response.Credentials[0].Title)
		assert.Equal(t, map[string]string{"username": "alice"}, response.Credentials[0].Fields)
		useCase.AssertExpectations(t)
	})

	t.Run("Success_TypeFilterOnlyIsUnpaged", func(t *testing.T) {
		useCase := &vaultMocks.MockCredentialUseCase{}
		actor := handlerTestActor()
		router := setupRouter(useCase, actor)

		useCase.On("List", mock.Anything, actor, actor.OrgID, actor.ID,
			mock.MatchedBy(func(q vaultDomain.CredentialQuery) bool {
				return !q.Paged && q.Type == vaultDomain.CredentialTypeSecureNote
			})).
			Return([]*vaultDomain.Credential{}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/user-credentials?credential_type=secure_note", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"success","credentials":[]}`, w.Body.String())
		useCase.AssertExpectations(t)
	})

	t.Run("Success_ExplicitPagingAndOrder", func(t *testing.T) {
		useCase := &vaultMocks.MockCredentialUseCase{}
		actor := handlerTestActor()
		router := setupRouter(useCase, actor)

		useCase.On("List", mock.Anything, actor, actor.OrgID, actor.ID,
			mock.MatchedBy(func(q vaultDomain.CredentialQuery) bool {
				return q.Paged &&
					q.Limit == 10 &&
					q.Offset == 20 &&
					q.OrderBy == vaultDomain.OrderBy{Column: "title", Direction: vaultDomain.OrderDesc}
			})).
			Return([]*vaultDomain.Credential{}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/user-credentials?limit=10&offset=20&order_by=title:desc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		useCase.AssertExpectations(t)
	})

	t.Run("InvalidOrderBy", func(t *testing.T) {
		useCase := &vaultMocks.MockCredentialUseCase{}
		router := setupRouter(useCase, handlerTestActor())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/user-credentials?order_by=ciphertext:asc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		useCase.AssertNotCalled(t, "List")
	})

	t.Run("DecryptionFailureIsInternalError", func(t *testing.T) {
		useCase := &vaultMocks.MockCredentialUseCase{}
		actor := handlerTestActor()
		router := setupRouter(useCase, actor)

		useCase.On("List", mock.Anything, actor, actor.OrgID, actor.ID, mock.Anything).
			Return(nil, cryptoDomain.ErrDecryptionFailed)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/user-credentials", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "decryption")
	})
}

func TestCredentialHandler_Update(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		useCase := &vaultMocks.MockCredentialUseCase{}
		actor := handlerTestActor()
		router := setupRouter(useCase, actor)

		credentialID := uuid.Must(uuid.NewV7())
		fields := map[string]string{"password": "rotated"}

		useCase.On("UpdateFields", mock.Anything, actor, actor.OrgID, actor.ID, credentialID, fields).
			Return(nil)

		body := []byte(`{"fields":{"password":"rotated"}}`)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/v1/user-credentials/"+credentialID.String(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"success"}`, w.Body.String())
		useCase.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		useCase := &vaultMocks.MockCredentialUseCase{}
		actor := handlerTestActor()
		router := setupRouter(useCase, actor)

		useCase.On("UpdateFields", mock.Anything, actor, actor.OrgID, actor.ID, mock.Anything, mock.Anything).
			Return(vaultDomain.ErrCredentialNotFound)

		body := []byte(`{"fields":{"password":"rotated"}}`)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/v1/user-credentials/"+uuid.Must(uuid.NewV7()).String(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("InvalidID", func(t *testing.T) {
		useCase := &vaultMocks.MockCredentialUseCase{}
		router := setupRouter(useCase, handlerTestActor())

		body := []byte(`{"fields":{}}`)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/v1/user-credentials/not-a-uuid", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		useCase.AssertNotCalled(t, "UpdateFields")
	})
}

func TestCredentialHandler_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		useCase := &vaultMocks.MockCredentialUseCase{}
		actor := handlerTestActor()
		router := setupRouter(useCase, actor)

		credentialID := uuid.Must(uuid.NewV7())
		useCase.On("Delete", mock.Anything, actor, actor.OrgID, actor.ID, credentialID).Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/v1/user-credentials/"+credentialID.String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
		useCase.AssertExpectations(t)
	})

	t.Run("PermissionDenied", func(t *testing.T) {
		useCase := &vaultMocks.MockCredentialUseCase{}
		actor := handlerTestActor()
		router := setupRouter(useCase, actor)

		useCase.On("Delete", mock.Anything, actor, actor.OrgID, actor.ID, mock.Anything).
			Return(authDomain.ErrPermissionDenied)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/v1/user-credentials/"+uuid.Must(uuid.NewV7()).String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
