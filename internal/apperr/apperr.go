// Package apperr defines the error taxonomy shared by services, repositories
// and the HTTP layer. Every user-visible failure carries a Kind which the HTTP
// layer maps to a status code; anything without a Kind is an internal error
// and surfaces as an opaque 500.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindNotFound
	KindConflict
)

type Error struct {
	kind    Kind
	message string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Kind() Kind {
	return e.kind
}

func Validation(message string) *Error {
	return &Error{kind: KindValidation, message: message}
}

func Validationf(format string, args ...any) *Error {
	return &Error{kind: KindValidation, message: fmt.Sprintf(format, args...)}
}

func Unauthorized(message string) *Error {
	return &Error{kind: KindUnauthorized, message: message}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{kind: KindNotFound, message: fmt.Sprintf(format, args...)}
}

func Conflict(message string) *Error {
	return &Error{kind: KindConflict, message: message}
}

// KindOf extracts the Kind from err, defaulting to KindInternal for errors
// that did not originate in this taxonomy (driver failures and the like).
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
