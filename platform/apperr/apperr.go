// Package apperr provides standardized domain error types for the
// application. Handlers return these typed errors and the HTTP layer maps
// them to status codes.
//
// Resolution failures (unparseable phone, unknown country, no derivable
// zone) are NOT errors anywhere in this codebase; they travel as empty
// values in response fields. The only hard error class is a malformed
// request structure.
package apperr

import (
	"fmt"
	"net/http"
)

// Kind represents the category of error.
type Kind int

const (
	// KindUnknown is the default error kind when none is specified.
	KindUnknown Kind = iota
	// KindBadRequest indicates a malformed or invalid request.
	KindBadRequest
	// KindValidation indicates a request that parsed but failed validation.
	KindValidation
	// KindNotFound indicates a resource was not found.
	KindNotFound
	// KindInternal indicates an unexpected internal error.
	KindInternal
)

// Error is a domain error with a typed Kind for HTTP mapping.
type Error struct {
	Kind    Kind
	Message string
	Op      string      // Operation that failed (optional)
	Err     error       // Underlying error (optional)
	Details interface{} // Additional details for response (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the appropriate HTTP status code for this error kind.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation, KindBadRequest:
		return http.StatusBadRequest
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// New creates a new domain error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NewWithDetails creates a new domain error carrying response details.
func NewWithDetails(kind Kind, message string, details interface{}) *Error {
	return &Error{Kind: kind, Message: message, Details: details}
}

// Wrap creates a new domain error wrapping an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}
