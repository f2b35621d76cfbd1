package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anantsaxena14/campus-sphere/internal/app/models/dto"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   dto.ErrorCode
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"session active elsewhere", apperrors.ErrSessionActive, http.StatusConflict, dto.ErrorCodeSessionActive},
		{"session expired", apperrors.ErrSessionExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"email taken", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"duplicate resource", apperrors.ErrResourceAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"invalid email", apperrors.ErrInvalidEmail, http.StatusBadRequest, dto.ErrorCodeInvalidEmail},
		{"short password", apperrors.ErrInvalidPassword, http.StatusBadRequest, dto.ErrorCodeInvalidPassword},
		{"verification link expired", apperrors.ErrVerificationTokenExpired, http.StatusGone, dto.ErrorCodeExpiredToken},
		{"unknown verification token", apperrors.ErrVerificationTokenNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"bus missing", apperrors.ErrBusNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"driver without bus", apperrors.ErrNoAssignedBus, http.StatusBadRequest, dto.ErrorCodeResourceInvalid},
		{"file too large", apperrors.ErrFileTooLarge, http.StatusRequestEntityTooLarge, dto.ErrorCodeValidationFailed},
		{"banned content", apperrors.ErrInappropriateContent, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"invalid tutor mode", apperrors.ErrInvalidTutorMode, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"tutor unavailable", apperrors.ErrTutorUnavailable, http.StatusBadGateway, dto.ErrorCodeExternalServiceError},
		{"unexpected error", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.expectedStatus, recorder.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.expectedCode, resp.Error.Code)
		})
	}
}

func TestHandleAPIErrorUnwrapsWrappedErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	HandleAPIError(c, fmt.Errorf("login failed: %w", apperrors.ErrInvalidCredentials))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
