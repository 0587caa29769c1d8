package errors

import (
	"net/http"

	"userhub/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details. The copy keeps matching the original
// under errors.Is so callers can still test for the predefined kind.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same business code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserNotRegistered = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_REGISTERED",
		"user not registered",
		"",
	)

	ErrEmailAlreadyExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_EXISTS",
		"user with this email already exists",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid password",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"missing or invalid bearer token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"password processing failed",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"token could not be issued",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// ErrInvalidPhoto is a validation failure with a photo-specific message.
	ErrInvalidPhoto = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"photo is not a supported image",
		"",
	)

	// Asset-related errors
	ErrAssetNotFound = NewBaseError(
		http.StatusNotFound,
		"ASSET_NOT_FOUND",
		"asset not found",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"UNAVAILABLE",
		"service temporarily unavailable",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"too many requests, slow down",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error to errors.Is / errors.As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database unavailable"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// AssetStoreError represents a failure of the photo asset store, implementing the AppError interface
type AssetStoreError struct {
	err     error
	details string
}

// NewAssetStoreError creates an asset-store-related error
func NewAssetStoreError(err error, details string) AppError {
	return &AssetStoreError{
		err:     err,
		details: details,
	}
}

func (e *AssetStoreError) Error() string {
	return errors.Wrap(e.err, "asset store operation failed").Error()
}

func (e *AssetStoreError) Unwrap() error {
	return e.err
}

func (e *AssetStoreError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

func (e *AssetStoreError) ErrorCode() string {
	return "ASSET_STORE_FAILED"
}

func (e *AssetStoreError) Message() string {
	return "asset store unavailable"
}

func (e *AssetStoreError) Details() string {
	return e.details
}
