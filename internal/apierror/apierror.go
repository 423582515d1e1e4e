// Package apierror provides the error taxonomy and response envelope for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a business error for HTTP mapping.
type Kind int

const (
	// KindNotFound: the referenced entity does not exist (404).
	KindNotFound Kind = iota + 1
	// KindConflict: business-rule violation such as a duplicate natural key,
	// insufficient stock or an invalid state transition (409).
	KindConflict
	// KindInternal: unanticipated failure; detail is never exposed (500).
	KindInternal
)

// Error is the canonical business error. Services return *Error so handlers can
// map it onto an HTTP status without inspecting message strings.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Detail + ": " + e.Err.Error()
	}
	return e.Detail
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound builds a 404-class error.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Detail: fmt.Sprintf(format, args...)}
}

// Conflict builds a 409-class error.
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Detail: fmt.Sprintf(format, args...)}
}

// Internal wraps an unanticipated error. The client-facing detail is always the
// generic message; err is kept for logging only.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Detail: "Error interno del servidor", Err: err}
}

// Classify returns err as *Error, wrapping anything unclassified as Internal.
func Classify(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Internal(err)
}

// StatusOf maps an error onto its HTTP status code.
func StatusOf(err error) int {
	switch Classify(err).Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// APIError is the JSON envelope for all 4xx/5xx responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
