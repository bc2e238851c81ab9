package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the three failure classes the API distinguishes.
// Callers match on these with errors.Is; the typed errors below wrap them.
var (
	// ErrValidation is returned when input fails shape or range checks.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized is returned when a credential is missing or invalid.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when a resource does not exist or is not
	// owned by the caller. The two cases are indistinguishable.
	ErrNotFound = errors.New("not found")
)

// FieldError describes a single failed constraint on an input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (f FieldError) String() string {
	if f.Field == "" {
		return f.Message
	}
	return f.Field + " " + f.Message
}

// ValidationError carries one or more field-level messages.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// Add appends another field message and returns the receiver.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	return e
}

// Error joins the field messages in declaration order.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return strings.Join(parts, "; ")
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// UnauthorizedError reports a rejected credential.
type UnauthorizedError struct {
	Message string
	Err     error
}

// NewUnauthorizedError creates an UnauthorizedError with the given client-facing message.
func NewUnauthorizedError(message string, err error) *UnauthorizedError {
	return &UnauthorizedError{Message: message, Err: err}
}

func (e *UnauthorizedError) Error() string {
	if e.Message == "" {
		return ErrUnauthorized.Error()
	}
	return e.Message
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *UnauthorizedError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUnauthorized}
	}
	return []error{ErrUnauthorized, e.Err}
}

// NotFoundError reports a missing (or foreign-owned) resource.
type NotFoundError struct {
	Resource string
}

// NewNotFoundError creates a NotFoundError for the named resource kind.
func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

func (e *NotFoundError) Error() string {
	if e.Resource == "" {
		return ErrNotFound.Error()
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Unwrap lets errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
