// Package service provides application-level services for managing the book catalog.
package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel or typed errors for expected error conditions
// 2. Unexpected errors are wrapped in service-specific error types
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrBookNotFound indicates that the requested book does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrBookNotFound = errors.New("book not found")

	// ErrInvalidRequest indicates the caller supplied input that fails
	// validation before any storage work happens.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrStorageFailure indicates the storage backend failed in a way the
	// caller cannot correct.
	// API layer should map this to HTTP 500 Internal Server Error.
	ErrStorageFailure = errors.New("storage failure")
)

// BookNotFoundError is returned when a lookup targets an ID with no
// corresponding book. It carries the ID so the API layer can render the
// exact message without inspecting internals.
type BookNotFoundError struct {
	ID int64
}

// Error implements the error interface for BookNotFoundError.
func (e *BookNotFoundError) Error() string {
	return fmt.Sprintf("Book not found with id: %d", e.ID)
}

// Unwrap ties the typed error to the ErrBookNotFound sentinel so callers
// can use errors.Is without caring about the concrete type.
func (e *BookNotFoundError) Unwrap() error {
	return ErrBookNotFound
}

// InvalidIDError is returned when an ID from the request cannot be parsed
// as a book identifier.
type InvalidIDError struct {
	Value string
}

// Error implements the error interface for InvalidIDError.
func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("Invalid book ID format: %s", e.Value)
}

// Unwrap ties the typed error to the ErrInvalidRequest sentinel.
func (e *InvalidIDError) Unwrap() error {
	return ErrInvalidRequest
}

// InvalidRequestError carries a caller-safe description of a validation
// failure, such as a blank required field or an unknown status value.
type InvalidRequestError struct {
	Message string
}

// Error implements the error interface for InvalidRequestError.
func (e *InvalidRequestError) Error() string {
	return e.Message
}

// Unwrap ties the typed error to the ErrInvalidRequest sentinel.
func (e *InvalidRequestError) Unwrap() error {
	return ErrInvalidRequest
}

// BookServiceError wraps errors from the book service with context.
type BookServiceError struct {
	// Operation is the operation that failed (e.g., "create_book", "search_books")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for BookServiceError.
func (e *BookServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("book service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("book service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *BookServiceError) Unwrap() error {
	return e.Err
}

// NewBookServiceError creates a new BookServiceError.
// Errors already classified by the service's taxonomy pass through
// unchanged; everything else is treated as a storage failure and wrapped.
func NewBookServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrBookNotFound) ||
		errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrStorageFailure) {
		return err
	}

	return &BookServiceError{
		Operation: operation,
		Message:   message,
		Err:       fmt.Errorf("%w: %v", ErrStorageFailure, err),
	}
}
