// Package apperror defines the failure categories the HTTP layer maps to
// status codes: invalid input (400), not found (404), upstream provider
// failure (502), storage failure (500).
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrUpstream     = errors.New("upstream provider error")
	ErrStorage      = errors.New("storage error")
)

type AppError struct {
	Err     error  // category sentinel
	Message string // human-readable message
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func InvalidInput(message string) *AppError {
	return &AppError{Err: ErrInvalidInput, Message: message}
}

func NotFound(resource string) *AppError {
	return &AppError{Err: ErrNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

// Upstream wraps a failure from the identity provider. The provider's raw
// response body goes into the message so it can be diagnosed from logs.
func Upstream(operation string, cause error) *AppError {
	return &AppError{Err: ErrUpstream, Message: fmt.Sprintf("%s: %v", operation, cause)}
}

func Storage(operation string, cause error) *AppError {
	return &AppError{Err: ErrStorage, Message: fmt.Sprintf("%s: %v", operation, cause)}
}
