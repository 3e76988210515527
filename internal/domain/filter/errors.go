package filter

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every rejection of a user selection.
var ErrInvalidInput = errors.New("invalid user input")

// FieldError names the selection that failed to parse.
type FieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s %q: %s", ErrInvalidInput, e.Field, e.Value, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrInvalidInput }
