package apperr

import (
	"errors"
	"fmt"
)

// Code is the machine-readable error category exposed to clients.
type Code string

const (
	CodeUnauthorized       Code = "UNAUTHORIZED"
	CodeForbidden          Code = "FORBIDDEN"
	CodeInvalidInput       Code = "INVALID_INPUT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeInvalidState       Code = "INVALID_STATE"
	CodeMethodNotAllowed   Code = "METHOD_NOT_ALLOWED"
	CodeTransactionFailure Code = "TRANSACTION_FAILURE"
)

// Error carries a category, a user-facing message and an optional wrapped
// cause. The cause is for logs; it is never serialized to clients.
type Error struct {
	Code Code
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func E(code Code, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

func Wrap(code Code, msg string, err error) *Error {
	return &Error{Code: code, Msg: msg, Err: err}
}

// As unwraps err to an *Error, nil when it is not one.
func As(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// Is reports whether err belongs to the given category.
func Is(err error, code Code) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}
