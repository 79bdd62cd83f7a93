package counter

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingReference is returned when moving a reference point that
	// was never set.
	ErrMissingReference = errors.New("reference point is not set")

	// ErrInvalidDirection is returned when a direction string is neither
	// "down" nor "up".
	ErrInvalidDirection = errors.New("invalid direction")
)

// MoveError wraps a failed TryMoveStart or TryMoveEnd with context
type MoveError struct {
	Reference string // "start" or "end"
	Delta     int64
	Err       error
}

// Error implements error interface
func (e *MoveError) Error() string {
	return fmt.Sprintf("move %s by %ds: %v", e.Reference, e.Delta, e.Err)
}

// Unwrap implements error unwrapping
func (e *MoveError) Unwrap() error {
	return e.Err
}
