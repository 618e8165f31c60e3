package domain

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrUnknownAlgorithm is returned when no solver is registered under the requested name.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// InvalidInputError describes malformed algorithm parameters. It is fatal to
// the current solve call; a solver never partially populates a trace.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Reason)
}

// InvalidInput constructs an InvalidInputError.
func InvalidInput(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}

// IsInvalidInput reports whether err is an input-shape error.
func IsInvalidInput(err error) bool {
	var iie *InvalidInputError
	return errors.As(err, &iie)
}
