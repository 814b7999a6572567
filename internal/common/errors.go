// Package common defines shared constants, helpers and the error taxonomy used
// across client and server layers of idkeeper. Callers should use errors.Is to
// match the sentinel kinds and errors.As to recover a *FieldError.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Input errors.
	ErrorValidation         = errors.New("validation error")
	ErrorConflict           = errors.New("already exists")
	ErrorInvalidLoginFormat = errors.New("invalid login format")

	// Credential errors.
	ErrorInvalidCredentials = errors.New("invalid login or password")

	// Auth errors (unknown or superseded token).
	ErrInvalidToken = errors.New("invalid token")
)

// FieldError binds an error kind (ErrorValidation or ErrorConflict) to the
// user field that caused it.
type FieldError struct {
	Kind  error
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Kind)
}

// Unwrap exposes the kind so errors.Is(err, ErrorConflict) works.
func (e *FieldError) Unwrap() error {
	return e.Kind
}

// NewValidationError reports a malformed value for field.
func NewValidationError(field string) error {
	return &FieldError{Kind: ErrorValidation, Field: field}
}

// NewConflictError reports a uniqueness violation on field.
func NewConflictError(field string) error {
	return &FieldError{Kind: ErrorConflict, Field: field}
}

// FieldOf returns the field carried by err, or "" if err has none.
func FieldOf(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Field
	}
	return ""
}
