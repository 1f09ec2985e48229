package game

import (
	"errors"
	"fmt"
)

// Kind classifies an engine failure. Every engine operation returns either
// nil or an *Error; nothing escapes the operation boundary as a panic or an
// untyped error.
type Kind string

const (
	KindUnauthorized  Kind = "unauthorized"
	KindForbidden     Kind = "forbidden"
	KindNotFound      Kind = "not_found"
	KindInvalidInput  Kind = "invalid_input"
	KindStateConflict Kind = "state_conflict"
	KindEliminated    Kind = "eliminated"
)

// Error is a structured engine failure.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func errf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the Kind from an error, or empty if it is not an engine
// error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
