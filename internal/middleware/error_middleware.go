package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anantsaxena14/campus-sphere/internal/app/models/dto"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto the standard error envelope
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrSessionActive):
		respond(c, http.StatusConflict, dto.ErrorCodeSessionActive, "Account is active on another device")
	case errors.Is(err, apperrors.ErrSessionExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Session expired")
	case errors.Is(err, apperrors.ErrSessionInvalid), errors.Is(err, apperrors.ErrSessionNotFound):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid session")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already registered")
	case errors.Is(err, apperrors.ErrInvalidEmail):
		respond(c, http.StatusBadRequest, dto.ErrorCodeInvalidEmail, "Invalid email format")
	case errors.Is(err, apperrors.ErrInvalidPassword):
		respond(c, http.StatusBadRequest, dto.ErrorCodeInvalidPassword, "Password must be at least 8 characters long")
	case errors.Is(err, apperrors.ErrVerificationTokenNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Invalid verification link")
	case errors.Is(err, apperrors.ErrVerificationTokenExpired):
		respond(c, http.StatusGone, dto.ErrorCodeExpiredToken, "Verification link expired. Please register again.")
	case errors.Is(err, apperrors.ErrUserNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found")
	case errors.Is(err, apperrors.ErrBusNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Bus not found")
	case errors.Is(err, apperrors.ErrDriverNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Driver not found")
	case errors.Is(err, apperrors.ErrNoAssignedBus):
		respond(c, http.StatusBadRequest, dto.ErrorCodeResourceInvalid, "No bus assigned to this driver")
	case errors.Is(err, apperrors.ErrAcademicResourceNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrFileTypeNotAllowed):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "File type not allowed")
	case errors.Is(err, apperrors.ErrFileTooLarge):
		respond(c, http.StatusRequestEntityTooLarge, dto.ErrorCodeValidationFailed, "File exceeds maximum upload size")
	case errors.Is(err, apperrors.ErrPostNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Post not found")
	case errors.Is(err, apperrors.ErrInappropriateContent):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Your post contains inappropriate content")
	case errors.Is(err, apperrors.ErrClubNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Club not found")
	case errors.Is(err, apperrors.ErrFacultyNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Faculty member not found")
	case errors.Is(err, apperrors.ErrInvalidTutorMode):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid tutor mode")
	case errors.Is(err, apperrors.ErrTutorUnavailable):
		respond(c, http.StatusBadGateway, dto.ErrorCodeExternalServiceError, "Tutor service unavailable")
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, messageOrDefault(err, "Resource not found"))
	case errors.Is(err, apperrors.ErrBadRequest):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, messageOrDefault(err, "Bad request"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed")
	default:
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

// messageOrDefault surfaces the wrapped CustomError message when one exists
func messageOrDefault(err error, fallback string) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}
