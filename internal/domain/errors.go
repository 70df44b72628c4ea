// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and are mapped to HTTP statuses by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity or filtered result set is empty.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates the request could not be understood.
	ErrValidation = errors.New("validation failed")

	// ErrUnprocessable indicates an entity could not be built, stored or removed.
	ErrUnprocessable = errors.New("unprocessable")

	// ErrUnavailable indicates a required dependency is unavailable.
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// UnprocessableError records which write operation failed and why.
type UnprocessableError struct {
	Operation string
	Reason    string
	Err       error
}

// Error implements the error interface.
func (e *UnprocessableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s unprocessable: %s", e.Operation, e.Reason)
	}

	return e.Operation + " unprocessable"
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *UnprocessableError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUnprocessable}
	}

	return []error{ErrUnprocessable, e.Err}
}

// NewUnprocessableError creates an unprocessable error with context.
func NewUnprocessableError(operation, reason string) error {
	return &UnprocessableError{Operation: operation, Reason: reason}
}

// WrapUnprocessable marks cause as the reason operation could not complete.
func WrapUnprocessable(operation string, cause error) error {
	return &UnprocessableError{Operation: operation, Reason: cause.Error(), Err: cause}
}

// UnavailableError provides context for unavailable errors.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnprocessable checks if an error is an unprocessable error.
func IsUnprocessable(err error) bool {
	return errors.Is(err, ErrUnprocessable)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
