package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrNotFound              = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrPermissionDenied   = errors.New("permission denied")
)

// Student errors
var (
	ErrStudentNotFound        = errors.New("student not found")
	ErrStudentIDAlreadyExists = errors.New("student ID already exists")
	ErrEmailAlreadyExists     = errors.New("email already exists")
	ErrLRNAlreadyExists       = errors.New("LRN already exists")
)

// Payment errors
var (
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrInvalidExamPeriod = errors.New("invalid exam period")
	ErrDuplicatePayment  = errors.New("payment for this exam period already recorded")
)

// Event errors
var (
	ErrEventNotFound = errors.New("event not found")
)

// Upload errors
var (
	ErrUploadRejected = errors.New("upload rejected")
)

// User errors
var (
	ErrUserNotFound = errors.New("user not found")
)

// Is returns whether target matches any of the errors in errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
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

// NewUploadRejectedError creates an upload rejection with a user-visible reason.
func NewUploadRejectedError(reason string) error {
	return &CustomError{
		Err:     ErrUploadRejected,
		Message: reason,
	}
}
