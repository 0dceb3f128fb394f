package service

import (
	"errors"
	"fmt"
)

// ErrorKind classifies service failures so handlers can pick a status code
// without inspecting message text.
type ErrorKind int

const (
	// KindInternal covers storage failures and anything else unexpected
	KindInternal ErrorKind = iota
	// KindValidation is malformed input caught before touching storage
	KindValidation
	// KindAuthorization is an authenticated caller doing something not permitted
	KindAuthorization
	// KindConflict is a write that would violate an exclusivity rule
	KindConflict
	// KindNotFound is a reference to an absent entity
	KindNotFound
)

// Error is the uniform failure value returned by every service operation.
type Error struct {
	Kind    ErrorKind
	Message string
	Details []string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func validationErr(message string, details ...string) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details}
}

func authorizationErr(message string) *Error {
	return &Error{Kind: KindAuthorization, Message: message}
}

func conflictErr(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func notFoundErr(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// internalErr wraps an unexpected failure with a generic caller-facing message
// that still carries the underlying diagnostic text.
func internalErr(op string, cause error) *Error {
	return &Error{
		Kind:    KindInternal,
		Message: fmt.Sprintf("An error occurred while %s: %v", op, cause),
		cause:   cause,
	}
}

// KindOf extracts the error kind, defaulting to KindInternal for plain errors
func KindOf(err error) ErrorKind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}

// DetailsOf returns the detail messages attached to a validation error, if any
func DetailsOf(err error) []string {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Details
	}
	return nil
}
