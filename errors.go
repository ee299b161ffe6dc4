package pointstore

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned by New when the requested geometry
	// cannot be represented, for example non-positive dimensions or capacity.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrStoreFull is returned by Add when every slot is in use.
	ErrStoreFull = errors.New("point store is full")

	// ErrInvalidHandle is returned when a handle is out of range or does not
	// reference a slot that is currently in use.
	ErrInvalidHandle = errors.New("invalid handle")
)

// ErrDimensionMismatch is a named error type for point dimension mismatch.
type ErrDimensionMismatch struct {
	Expected int // Expected dimensions
	Actual   int // Actual dimensions
}

// Error returns the error message for dimension mismatch.
func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
