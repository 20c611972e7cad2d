package domain

import "errors"

// Sentinel errors with fixed client-facing messages. The HTTP error handler
// maps them to status codes; the message text is part of the API contract.
var (
	ErrBadCredentials  = errors.New("Bad credentials")
	ErrAccessDenied    = errors.New("Access Denied")
	ErrUnauthenticated = errors.New("Full authentication is required to access this resource")
)

// AlreadyExistsError signals a uniqueness violation (user email, genre name).
type AlreadyExistsError struct {
	Message string
}

func (e *AlreadyExistsError) Error() string { return e.Message }

// NewAlreadyExists builds an AlreadyExistsError with the given message.
func NewAlreadyExists(message string) *AlreadyExistsError {
	return &AlreadyExistsError{Message: message}
}

// NotFoundError signals that a resource could not be resolved by its key.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NewNotFound builds a NotFoundError with the given message.
func NewNotFound(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// ValidationError carries one message per failed request field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "request validation failed" }
