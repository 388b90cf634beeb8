// Package apperr defines the error type used throughout pomobar.
package apperr

import "fmt"

// Error is a sentinel application error. The Message may contain
// fmt verbs which are filled in through Fmt.
type Error struct {
	Message string
	cause   *Error
}

func (e *Error) Error() string {
	return e.Message
}

// Fmt returns a copy of the error with its format verbs substituted.
// The copy matches the original in errors.Is comparisons.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		cause:   e,
	}
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || e.cause == t
}
