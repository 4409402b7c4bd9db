package snipe

import (
	"errors"
	"fmt"
)

// Engine errors.
var (
	// ErrNotFound indicates the search exhausted all eligible scopes.
	// Non-fatal; the cursor is left exactly where it was.
	ErrNotFound = errors.New("snipe: pattern not found")

	// ErrNothingToRepeat indicates a repeat command with no prior search.
	ErrNothingToRepeat = errors.New("snipe: nothing to repeat")

	// ErrEmptyKeys indicates a search invoked with zero keys.
	// This is a programming error, not a user-facing condition.
	ErrEmptyKeys = errors.New("snipe: search invoked with no keys")
)

// NotFoundError reports a failed search along with the searched text,
// rendered readably (control characters become named tokens).
type NotFoundError struct {
	Query string
}

// Error implements error.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("snipe: pattern not found: %s", e.Query)
}

// Is makes errors.Is(err, ErrNotFound) succeed.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
