package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionExpired     = errors.New("session expired")
	ErrSessionInvalid     = errors.New("invalid session")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionActive      = errors.New("account is active on another device")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
)

// Email verification errors
var (
	ErrVerificationTokenNotFound = errors.New("invalid verification link")
	ErrVerificationTokenExpired  = errors.New("verification link expired")
)

// Bus tracking errors
var (
	ErrBusNotFound    = errors.New("bus not found")
	ErrDriverNotFound = errors.New("driver not found")
	ErrNoAssignedBus  = errors.New("driver has no assigned bus")
)

// Resource errors
var (
	ErrAcademicResourceNotFound = errors.New("academic resource not found")
	ErrFileTypeNotAllowed       = errors.New("file type not allowed")
	ErrFileTooLarge             = errors.New("file exceeds maximum upload size")
)

// Community errors
var (
	ErrPostNotFound         = errors.New("post not found")
	ErrInappropriateContent = errors.New("post contains inappropriate content")
	ErrClubNotFound         = errors.New("club not found")
	ErrAlreadyMember        = errors.New("already a member")
)

// Directory errors
var (
	ErrFacultyNotFound = errors.New("faculty member not found")
	ErrAdminNotFound   = errors.New("admin not found")
)

// AI tutor errors
var (
	ErrTutorUnavailable = errors.New("tutor service unavailable")
	ErrInvalidTutorMode = errors.New("invalid tutor mode")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
