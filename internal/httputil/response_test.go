package httputil

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/credvault/internal/errors"
)

func TestHandleErrorGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name          string
		err           error
		expectedCode  int
		expectedError string
	}{
		{
			name:          "not found error",
			err:           apperrors.ErrNotFound,
			expectedCode:  http.StatusNotFound,
			expectedError: "not_found",
		},
		{
			name:          "wrapped not found error",
			err:           apperrors.Wrap(apperrors.ErrNotFound, "credential not found"),
			expectedCode:  http.StatusNotFound,
			expectedError: "not_found",
		},
		{
			name:          "conflict error",
			err:           apperrors.ErrConflict,
			expectedCode:  http.StatusConflict,
			expectedError: "conflict",
		},
		{
			name:          "invalid input error",
			err:           apperrors.Wrap(apperrors.ErrInvalidInput, "title must not be blank"),
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "invalid_input",
		},
		{
			name:          "unauthorized error",
			err:           apperrors.ErrUnauthorized,
			expectedCode:  http.StatusUnauthorized,
			expectedError: "unauthorized",
		},
		{
			name:          "forbidden error",
			err:           apperrors.Wrap(apperrors.ErrForbidden, "permission denied"),
			expectedCode:  http.StatusForbidden,
			expectedError: "forbidden",
		},
		{
			name:          "storage error maps to internal error",
			err:           apperrors.Wrap(apperrors.ErrStorage, "failed to query credentials"),
			expectedCode:  http.StatusInternalServerError,
			expectedError: "internal_error",
		},
		{
			name:          "unknown error maps to internal error",
			err:           apperrors.New("something unexpected"),
			expectedCode:  http.StatusInternalServerError,
			expectedError: "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleErrorGin(c, tt.err, logger)

			assert.Equal(t, tt.expectedCode, w.Code)

			var response ErrorResponse
			err := json.Unmarshal(w.Body.Bytes(), &response)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedError, response.Error)
		})
	}

	t.Run("nil error writes nothing", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		HandleErrorGin(c, nil, logger)

		assert.Empty(t, w.Body.String())
	})

	t.Run("internal error does not leak details", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		HandleErrorGin(c, apperrors.Wrap(apperrors.ErrStorage, "pq: connection refused"), logger)

		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestHandleBadRequestGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleBadRequestGin(c, apperrors.New("malformed json"), logger)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "bad_request", response.Error)
	assert.Equal(t, "malformed json", response.Message)
}

func TestHandleValidationErrorGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleValidationErrorGin(c, apperrors.New("title: must not be blank"), logger)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "validation_error", response.Error)
}
