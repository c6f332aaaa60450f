package apperr

import (
	"errors"
	"fmt"
)

// Stable machine-readable codes returned to clients.
const (
	CodeValidation   = "VALIDATION"
	CodeNotFound     = "NOT_FOUND"
	CodeForbidden    = "FORBIDDEN"
	CodeConflict     = "CONFLICT"
	CodeEmptyCart    = "EMPTY_CART"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeTxFailed     = "TX_FAILED"
)

// Error is a caller-visible failure with a stable code.
type Error struct {
	Code    string
	Message string
	Err     error // wrapped cause, never exposed to clients
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, a ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, a...)}
}

func NotFound(format string, a ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, a...)}
}

func Forbidden(format string, a ...any) *Error {
	return &Error{Code: CodeForbidden, Message: fmt.Sprintf(format, a...)}
}

func Conflict(format string, a ...any) *Error {
	return &Error{Code: CodeConflict, Message: fmt.Sprintf(format, a...)}
}

func Unauthorized(format string, a ...any) *Error {
	return &Error{Code: CodeUnauthorized, Message: fmt.Sprintf(format, a...)}
}

func EmptyCart(msg string) *Error {
	return &Error{Code: CodeEmptyCart, Message: msg}
}

// TxFailed wraps a store write failure. The cause is kept for logs only.
func TxFailed(msg string, cause error) *Error {
	return &Error{Code: CodeTxFailed, Message: msg, Err: cause}
}

// As extracts an *Error from any error chain.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code string) bool {
	e, ok := As(err)
	return ok && e.Code == code
}
