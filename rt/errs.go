package rt

import (
	"errors"
	"fmt"
)

var (
	// ErrShape is the class of recoverable shape-incompatibility errors
	// raised by row combination (couple, join).
	ErrShape = errors.New("shape mismatch")

	// ErrParse is the class of literal notation parse errors.
	ErrParse = errors.New("parse error")
)

// Error is a runtime error attributed to a source location. It wraps one of
// the sentinel classes above so callers can test with errors.Is.
type Error struct {
	Span Span
	Err  error
}

func (e *Error) Error() string {
	if e.Span == (Span{}) {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Span, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
