package domain

import "errors"

// Error kinds. Services wrap these with a client-facing message via the
// constructors below; the HTTP layer maps each kind to a status code.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource conflict")
	ErrForbidden    = errors.New("access forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error carries an error kind together with the message shown to the client.
type Error struct {
	kind    error
	message string
}

func (e *Error) Error() string { return e.message }

// Unwrap exposes the kind so callers can match with errors.Is.
func (e *Error) Unwrap() error { return e.kind }

// NotFound builds a not-found error with the given client message.
func NotFound(message string) error {
	return &Error{kind: ErrNotFound, message: message}
}

// Conflict builds a conflict error with the given client message.
func Conflict(message string) error {
	return &Error{kind: ErrConflict, message: message}
}

// Forbidden builds a forbidden error with the given client message.
func Forbidden(message string) error {
	return &Error{kind: ErrForbidden, message: message}
}

// Unauthorized builds an authentication error with the given client message.
func Unauthorized(message string) error {
	return &Error{kind: ErrUnauthorized, message: message}
}
