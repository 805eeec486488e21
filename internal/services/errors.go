// Package services defines the handler core for questions and answers: pure
// request/response operations parameterized over the DAO capabilities.
//
// Every operation returns either its result or a *HandlerError. Translation
// into HTTP status codes is performed by the handlers package.
package services

import (
	"errors"
	"fmt"

	"github.com/tbourn/go-qa-backend/internal/repo"
)

// ErrorKind classifies a HandlerError.
type ErrorKind int

const (
	// BadRequest is a client-fixable failure.
	BadRequest ErrorKind = iota + 1
	// InternalError is a server-side failure; a retry may succeed.
	InternalError
)

// String returns a short label for the kind.
func (k ErrorKind) String() string {
	switch k {
	case BadRequest:
		return "bad_request"
	case InternalError:
		return "internal_error"
	default:
		return "unknown"
	}
}

// HandlerError is the error type returned by every service operation.
// Message is the text the HTTP layer writes back to the client.
type HandlerError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements error.
func (e *HandlerError) Error() string { return e.Message }

// Unwrap exposes the DAO error, if any.
func (e *HandlerError) Unwrap() error { return e.Err }

// badRequest builds a validation failure.
func badRequest(format string, args ...any) *HandlerError {
	return &HandlerError{Kind: BadRequest, Message: fmt.Sprintf(format, args...)}
}

// fromDAO maps a DAO failure using the uniform rule: invalid identifiers are
// BadRequest with the DAO's detail, everything else is InternalError with
// the cause's text.
func fromDAO(err error) *HandlerError {
	if repo.IsInvalidUUID(err) {
		return &HandlerError{Kind: BadRequest, Message: err.Error(), Err: err}
	}
	msg := err.Error()
	var dbErr *repo.DBError
	if errors.As(err, &dbErr) && dbErr.Err != nil {
		msg = dbErr.Err.Error()
	}
	return &HandlerError{Kind: InternalError, Message: msg, Err: err}
}

// AsHandlerError extracts a *HandlerError from err. Errors of any other type
// are reported as InternalError so callers can always map them.
func AsHandlerError(err error) *HandlerError {
	var he *HandlerError
	if errors.As(err, &he) {
		return he
	}
	return &HandlerError{Kind: InternalError, Message: err.Error(), Err: err}
}
