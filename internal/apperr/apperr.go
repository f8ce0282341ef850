// Package apperr defines the failure taxonomy shared by every component.
// Handlers map each kind onto a fixed HTTP status; the mapping must not
// change, presentation depends on it.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindBadRequest Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInternal
)

type Error struct {
	Kind    Kind
	Message string
	Err     error // underlying cause, never exposed to callers
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Status() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func BadRequest(message string) *Error {
	if message == "" {
		message = "Invalid request"
	}
	return &Error{Kind: KindBadRequest, Message: message}
}

func Unauthorized() *Error {
	return &Error{Kind: KindUnauthorized, Message: "Invalid email or password"}
}

// Unauthenticated is for requests with no resolved user, as opposed to a
// failed credential check.
func Unauthenticated() *Error {
	return &Error{Kind: KindUnauthorized, Message: "Not authenticated"}
}

func Forbidden(message string) *Error {
	if message == "" {
		message = "You are not authorized to perform this action"
	}
	return &Error{Kind: KindForbidden, Message: message}
}

func NotFound(message string) *Error {
	if message == "" {
		message = "Invalid request"
	}
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Internal(err error) *Error {
	return &Error{
		Kind:    KindInternal,
		Message: "Sorry, the server failed to respond correctly",
		Err:     err,
	}
}

// From returns err as an *Error, wrapping anything unrecognized as an
// internal failure so unexpected storage errors never leak detail.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err)
}
