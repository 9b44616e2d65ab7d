// Package apperrors defines the closed error taxonomy surfaced by the API.
// Every failure a service can produce belongs to exactly one kind, and each
// kind maps 1:1 to an HTTP status code. Errors are terminal for the current
// request; nothing is retried internally.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for status mapping.
type Kind int

const (
	// KindValidation marks malformed or missing input (400).
	KindValidation Kind = iota
	// KindUnauthorized marks a failed credential check (401).
	KindUnauthorized
	// KindForbidden marks an authorization failure, role or group mismatch (403).
	KindForbidden
	// KindNotFound marks a referenced entity that does not exist (404).
	KindNotFound
	// KindMethodNotAllowed marks an unsupported operation on a known path (405).
	KindMethodNotAllowed
	// KindConflict marks a uniqueness violation (409).
	KindConflict
	// KindPersistence marks a store write failure (500).
	KindPersistence
)

// Error is a classified, user-presentable failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error // optional underlying cause, not shown to clients
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error { return e.Err }

// Validation returns a 400-class error.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Unauthorized returns a 401-class error.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Forbidden returns a 403-class error.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// NotFound returns a 404-class error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// MethodNotAllowed returns a 405-class error.
func MethodNotAllowed(message string) *Error {
	return &Error{Kind: KindMethodNotAllowed, Message: message}
}

// Conflict returns a 409-class error.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Persistence wraps a store failure as a 500-class error.
func Persistence(message string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: message, Err: err}
}

// StatusCode maps an error to its HTTP status. Unclassified errors are
// treated as persistence-level failures.
func StatusCode(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// UserMessage extracts the client-facing message. Unclassified errors get a
// generic message so internal details never leak.
func UserMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
