// Package grid: sentinel error set.
// All public operations return these sentinels (optionally wrapped with
// method context via gridErrorf) and callers match them with errors.Is.
// No operation panics on user-triggered conditions.
package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape indicates that requested grid dimensions are negative.
	ErrBadShape = errors.New("grid: dimensions must be non-negative")
	// ErrNonRectangular indicates rows of differing lengths in From2D input.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfRange indicates a row or column index outside the valid bounds.
	ErrOutOfRange = errors.New("grid: index out of range")
	// ErrDimensionMismatch indicates operands with different row/column counts.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")
	// ErrNilGrid indicates a nil *Grid receiver or argument.
	ErrNilGrid = errors.New("grid: nil grid")
)

// gridErrorf wraps an underlying sentinel with operation context.
// Callers still match the sentinel via errors.Is.
func gridErrorf(op string, err error) error {
	return fmt.Errorf("grid.%s: %w", op, err)
}

// indexErrorf wraps a bounds sentinel with the offending coordinates.
func indexErrorf(op string, row, col int, err error) error {
	return fmt.Errorf("grid.%s(%d,%d): %w", op, row, col, err)
}
