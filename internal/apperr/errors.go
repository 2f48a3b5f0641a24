// Package apperr holds the error taxonomy shared by the custody, rail and
// transfer packages and its mapping onto caller-facing responses.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a stable, caller-visible error code.
type Code string

const (
	CodeValidation           Code = "VALIDATION_ERROR"
	CodeKeyCustody           Code = "KEY_CUSTODY_ERROR"
	CodeProvider             Code = "PROVIDER_ERROR"
	CodeWalletNotInitialized Code = "WALLET_NOT_INITIALIZED"
	CodeUnauthorized         Code = "UNAUTHORIZED"
	CodeRateLimited          Code = "RATE_LIMIT_EXCEEDED"
	CodeNotFound             Code = "NOT_FOUND"
	CodeInternal             Code = "INTERNAL_ERROR"
)

// Error is a classified error with a human-readable message.
// Err keeps the underlying cause for logs and errors.Is/As; it is never rendered.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error without a cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a classified error around cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Err: cause}
}

// Validation returns a VALIDATION_ERROR with a formatted message.
func Validation(format string, args ...any) *Error {
	return New(CodeValidation, fmt.Sprintf(format, args...))
}

// WalletNotInitialized returns the precondition error for a missing wallet.
func WalletNotInitialized(what string) *Error {
	return New(CodeWalletNotInitialized, what+" not initialized")
}

// Internal wraps an unanticipated failure.
func Internal(cause error) *Error {
	return Wrap(CodeInternal, "internal error", cause)
}

// CodeOf returns the code of the first *Error in err's chain,
// or CodeInternal when err is unclassified.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// HTTPStatus maps an error onto a response status code.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeValidation, CodeWalletNotInitialized:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeRateLimited:
		return http.StatusTooManyRequests
	case CodeKeyCustody:
		return http.StatusUnprocessableEntity
	case CodeProvider:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message that may be shown to a caller.
// Internal errors never expose their detail.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Code != CodeInternal {
		return e.Message
	}
	return "internal error"
}
