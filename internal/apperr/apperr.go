// Package apperr classifies application errors so handlers can map them to
// HTTP responses without knowing which layer produced them.
package apperr

import (
	"errors"
	"net/http"
)

// Kind is an application error category.
type Kind string

const (
	Validation   Kind = "validation"
	Auth         Kind = "auth"
	Unauthorized Kind = "unauthorized"
	NotFound     Kind = "not_found"
	Storage      Kind = "storage"
)

// GenericMessage is returned to clients for any error without a user-facing message.
const GenericMessage = "Something went wrong!"

// Error is a categorized application error.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a categorized error with a client-facing message.
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a categorized error carrying the underlying cause.
func Wrap(kind Kind, message string, cause error) error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// KindOf returns the error kind, defaulting to Storage for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) && e.Kind != "" {
		return e.Kind
	}
	return Storage
}

// MessageOf returns the message safe to show a client. Storage errors and
// untyped errors never leak their cause.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != Storage && e.Message != "" {
		return e.Message
	}
	return GenericMessage
}

// HTTPStatus maps an error kind to an HTTP status code.
func HTTPStatus(kind Kind) int {
	switch kind {
	case Validation, Auth:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
