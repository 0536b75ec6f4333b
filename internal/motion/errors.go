package motion

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by every [ValidationError].
var ErrValidation = errors.New("motion: invalid input")

// ValidationError reports a rejected user input field.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
