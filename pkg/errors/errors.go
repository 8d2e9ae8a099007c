package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Common application errors
var (
	ErrStorageUnavailable = NewStorageUnavailableError("user store", nil)
	ErrInternal           = NewInternalError("internal server error", nil)
)

// StorageUnavailableError reports that the storage collaborator could not
// complete a read. The underlying driver error is kept as the cause.
type StorageUnavailableError struct {
	Store string
	Err   error
}

// NewStorageUnavailableError creates a new storage unavailable error
func NewStorageUnavailableError(store string, err error) *StorageUnavailableError {
	return &StorageUnavailableError{
		Store: store,
		Err:   err,
	}
}

// Error implements the error interface
func (e *StorageUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s unavailable: %v", e.Store, e.Err)
	}
	return fmt.Sprintf("%s unavailable", e.Store)
}

// Unwrap returns the wrapped error
func (e *StorageUnavailableError) Unwrap() error {
	return e.Err
}

// Is reports any StorageUnavailableError as matching ErrStorageUnavailable.
func (e *StorageUnavailableError) Is(target error) bool {
	_, ok := target.(*StorageUnavailableError)
	return ok
}

// HTTPStatus returns the HTTP status for this error
func (e *StorageUnavailableError) HTTPStatus() int {
	return http.StatusServiceUnavailable
}

// InternalError represents an internal server error with context
type InternalError struct {
	Message string
	Err     error
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *InternalError {
	return &InternalError{
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface
func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *InternalError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status for this error
func (e *InternalError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// HTTPStatuser interface for errors that can provide an HTTP status
type HTTPStatuser interface {
	HTTPStatus() int
}

// IsStorageUnavailable reports whether err is, or wraps, a StorageUnavailableError.
func IsStorageUnavailable(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}

// StatusOf returns the HTTP status carried by err, or 500 if it has none.
func StatusOf(err error) int {
	var s HTTPStatuser
	if errors.As(err, &s) {
		return s.HTTPStatus()
	}
	return http.StatusInternalServerError
}
