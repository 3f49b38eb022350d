// Package apperror defines the error kinds the API reports to callers.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("validation error")
	ErrAuth             = errors.New("unauthorized")
	ErrNotFound         = errors.New("not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrStorage          = errors.New("storage error")
)

type AppError struct {
	Err     error  // kind sentinel
	Message string // caller-facing message
	Field   string // optional: input field that failed
	Cause   error  // optional: underlying failure, never shown to callers
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{Err: ErrValidation, Message: message, Field: field}
}

func Unauthorized(message string) *AppError {
	return &AppError{Err: ErrAuth, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Err: ErrNotFound, Message: message}
}

func MethodNotAllowed() *AppError {
	return &AppError{Err: ErrMethodNotAllowed, Message: "Method not allowed"}
}

// Storage wraps a failure talking to the relational store. op names the
// operation for logs.
func Storage(op string, cause error) *AppError {
	return &AppError{Err: ErrStorage, Message: op, Cause: cause}
}
