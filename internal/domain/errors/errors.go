// Package errors is the catalogue of errors the HTTP layer can render: each
// carries a status code, a stable business code and a client-facing message.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError is found with errors.As by the HTTP error handler.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string // stable, machine readable
	Message() string   // safe to show to clients
	Details() string
}

// BaseError is the AppError behind every sentinel below. Values are never
// mutated; WithDetails returns a copy.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func newError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches on the business code, so WithDetails copies still match the
// sentinel they came from.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WrapMessage adds log context without changing what the client sees.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string { return e.message }
func (e *BaseError) Details() string { return e.details }

// WithDetails returns a copy carrying details for the response body.
func (e *BaseError) WithDetails(details string) *BaseError {
	cp := *e
	cp.details = details

	return &cp
}

// Accounts and authentication.
var (
	ErrUserNotFound        = newError(http.StatusNotFound, "USER_NOT_FOUND", "user not found")
	ErrUserAlreadyExists   = newError(http.StatusConflict, "USER_ALREADY_EXISTS", "email is already registered")
	ErrUserCreationFailed  = newError(http.StatusInternalServerError, "USER_CREATION_FAILED", "failed to create user")
	ErrUnauthorized        = newError(http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
	ErrInvalidCredentials  = newError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
	ErrRefreshTokenInvalid = newError(http.StatusUnauthorized, "REFRESH_TOKEN_INVALID", "refresh token is invalid or expired")
	ErrPasswordHashFailed  = newError(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "failed to process password")
)

// Request input.
var (
	ErrValidationFailed = newError(http.StatusBadRequest, "VALIDATION_FAILED", "input validation failed")
	ErrInvalidInput     = newError(http.StatusBadRequest, "INVALID_INPUT", "invalid input")
)

// ErrGeocodingUnavailable means the provider failed; nothing was written and
// the same request can be retried.
var ErrGeocodingUnavailable = newError(
	http.StatusServiceUnavailable,
	"GEOCODING_UNAVAILABLE",
	"location lookup is temporarily unavailable, please try again",
)

// Listings and their images.
var (
	ErrListingNotFound           = newError(http.StatusNotFound, "LISTING_NOT_FOUND", "listing not found")
	ErrListingOwnershipViolation = newError(http.StatusForbidden, "LISTING_OWNERSHIP_VIOLATION", "you do not have permission to modify this listing")
	ErrImageNotFound             = newError(http.StatusNotFound, "IMAGE_NOT_FOUND", "image not found")
	ErrImageLimitReached         = newError(http.StatusConflict, "IMAGE_LIMIT_REACHED", "the listing already has the maximum number of images")
	ErrImageTooLarge             = newError(http.StatusRequestEntityTooLarge, "IMAGE_TOO_LARGE", "image exceeds the maximum allowed size")
	ErrUnsupportedImage          = newError(http.StatusUnsupportedMediaType, "UNSUPPORTED_IMAGE", "only JPEG, PNG, GIF and WebP images are accepted")
	ErrStorageFailed             = newError(http.StatusInternalServerError, "STORAGE_FAILED", "failed to access image storage")
	ErrConflict                  = newError(http.StatusConflict, "CONFLICT", "resource conflict")
)

// DatabaseExecuteError is an unclassified store failure. Clients see a plain
// 500; the driver error stays reachable through Unwrap for the logs.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
