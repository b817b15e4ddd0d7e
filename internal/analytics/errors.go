package analytics

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every InputError via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// InputError reports a malformed argument rejected before any aggregation runs.
type InputError struct {
	Field   string
	Value   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field, value, format string, args ...any) *InputError {
	return &InputError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)}
}
