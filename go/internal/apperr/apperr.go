// Package apperr defines the request-scoped failures returned to HTTP callers.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a failure
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindBadRequest
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindBadRequest:
		return "bad_request"
	default:
		return "internal"
	}
}

// Error is a failure with the status code and message written to the client
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound builds a 404 error
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: msg}
}

// Conflict builds a conflict error. The status differs per rule (400 or 403).
func Conflict(status int, msg string) *Error {
	return &Error{Kind: KindConflict, Status: status, Message: msg}
}

// BadRequest builds a 400 error
func BadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Status: http.StatusBadRequest, Message: msg}
}

// Internal is what unclassified errors fold into
var Internal = &Error{Kind: KindInternal, Status: http.StatusInternalServerError, Message: "Internal server error"}

// From extracts an *Error from err's chain, falling back to Internal
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal
}
