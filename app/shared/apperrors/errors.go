// Package apperrors holds the error taxonomy shared by every module:
// validation failures, missing entities, and storage faults.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindStorage    Kind = "storage"
)

// Sentinels usable with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrStorage    = errors.New("storage error")
)

// Error is the structured error returned by every service operation.
type Error struct {
	Kind    Kind
	Message string
	// Field names the offending input for validation errors.
	Field string
	// Entity and ID describe the missing record for not-found errors.
	Entity string
	ID     string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		if e.ID != "" {
			return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
		}
		return e.Entity + " not found"
	case KindStorage:
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the kind sentinels so callers can write errors.Is(err, ErrNotFound).
func (e *Error) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrStorage:
		return e.Kind == KindStorage
	}
	return false
}

// Validation reports bad caller input.
func Validation(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// NotFound reports a missing entity.
func NotFound(entity, id string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, ID: id}
}

// Storage wraps a persistence failure. The message is safe to show to users.
func Storage(message string, err error) *Error {
	return &Error{Kind: KindStorage, Message: message, Err: err}
}

// KindOf returns the kind of err, treating unknown errors as storage faults.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

// PublicMessage returns the text that may be shown to an API caller.
func PublicMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return "an unexpected error occurred"
	}
	switch e.Kind {
	case KindStorage:
		return e.Message
	default:
		return e.Error()
	}
}
