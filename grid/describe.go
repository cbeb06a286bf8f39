// Package grid: human-readable dimension reports.
package grid

import (
	"fmt"
	"io"
)

// DescribeDimensions writes "Matrix dimensions: RxC" followed by a newline
// to w, where R and C are the grid's row and column counts. It is generic
// over the element type, so grids of every instantiation can be reported.
// Returns ErrNilGrid for a nil grid (typed or untyped); write errors are
// wrapped with operation context.
// Complexity: O(1) plus the cost of the write.
func DescribeDimensions[T any](w io.Writer, g *Grid[T]) error {
	if err := ValidateNotNil(g); err != nil {
		return gridErrorf("DescribeDimensions", err)
	}
	if _, err := fmt.Fprintf(w, "Matrix dimensions: %dx%d\n", g.Rows(), g.Cols()); err != nil {
		return gridErrorf("DescribeDimensions", err)
	}

	return nil
}

// DescribeSolver writes the specialized float-grid report
// "Specialized solver for float matrix with dimensions: RxC" to w.
// Historically this operation was declared but never implemented, which
// broke the build at link time; it is defined here so every public
// operation has a working implementation.
// Returns ErrNilGrid for a nil grid; write errors are wrapped with
// operation context.
func DescribeSolver(w io.Writer, g *Grid[float64]) error {
	if err := ValidateNotNil(g); err != nil {
		return gridErrorf("DescribeSolver", err)
	}
	if _, err := fmt.Fprintf(w, "Specialized solver for float matrix with dimensions: %dx%d\n", g.Rows(), g.Cols()); err != nil {
		return gridErrorf("DescribeSolver", err)
	}

	return nil
}
