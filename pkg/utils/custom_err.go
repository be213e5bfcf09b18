package utils

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound           = errors.New("no document found with that id")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrDatabaseError      = errors.New("database error")
)

// AppError is an operational error with a client-facing status code and
// message. Anything else that reaches the error handler is treated as a
// programming error and rendered as a generic 500.
type AppError struct {
	Code        int
	Message     string
	Operational bool
	Err         error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status returns "fail" for 4xx codes and "error" otherwise.
func (e *AppError) Status() string {
	if e.Code >= 400 && e.Code < 500 {
		return "fail"
	}
	return "error"
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message, Operational: true}
}

// InvalidIDError reports a malformed identifier, the cast-error case.
func InvalidIDError(value string) *AppError {
	return NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid id: %s.", value))
}

// DuplicateFieldError reports a unique-constraint conflict on a known value.
func DuplicateFieldError(value string) *AppError {
	return NewAppError(http.StatusBadRequest,
		fmt.Sprintf("Duplicate field value: %q. Please use another value!", value))
}
