// Package grid: canonical validation checks shared by element-wise
// operations. Validators return plain sentinels; call sites wrap them with
// operation context via gridErrorf.
package grid

// ValidateNotNil ensures the grid reference is non-nil.
// Returns ErrNilGrid if g == nil.
// Complexity: O(1).
func ValidateNotNil[T any](g *Grid[T]) error {
	if g == nil {
		return ErrNilGrid
	}

	return nil
}

// ValidateSameShape ensures grids a and b have equal dimensions.
// Assumes both are non-nil (callers run ValidateNotNil first).
// Returns ErrDimensionMismatch if row or column counts differ.
// Complexity: O(1).
func ValidateSameShape[T any](a, b *Grid[T]) error {
	if a.rows != b.rows || a.cols != b.cols {
		return ErrDimensionMismatch
	}

	return nil
}
