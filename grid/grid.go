// Package grid: the Grid[T] container.
// Grid is a concrete, row-major 2D container storing elements in a flat
// slice for cache friendliness. Dimensions are fixed at construction and
// every accessor validates its indices.
package grid

import (
	"fmt"
	"math"
)

// Grid is a dense, row-major rows×cols container of T values.
// rows and cols never change after construction; data holds rows*cols
// elements in row-major order.
type Grid[T any] struct {
	rows, cols int // fixed dimensions
	data       []T // flat backing storage, length == rows*cols
}

// New creates a rows×cols Grid with every cell holding T's zero value.
// Stage 1 (Validate): reject negative dimensions.
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): return the new Grid.
// Zero-sized grids (rows == 0 or cols == 0) are legal and hold no cells.
// Dimensions whose product overflows int are rejected as ErrBadShape
// rather than allocating a mis-sized grid.
// Complexity: O(rows×cols) time and memory.
func New[T any](rows, cols int) (*Grid[T], error) {
	if rows < 0 || cols < 0 {
		return nil, gridErrorf("New", ErrBadShape)
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return nil, gridErrorf("New", ErrBadShape)
	}

	return &Grid[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// From2D builds a Grid from a nested slice, deep-copying every row so the
// caller's slice can be mutated freely afterwards.
// Returns ErrNonRectangular if any row length differs from the first.
// An empty outer slice yields a 0×0 grid.
// Complexity: O(rows×cols) time and memory.
func From2D[T any](values [][]T) (*Grid[T], error) {
	rows := len(values)
	if rows == 0 {
		return &Grid[T]{}, nil
	}
	cols := len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, gridErrorf("From2D", ErrNonRectangular)
		}
	}
	// Deep copy into flat row-major storage
	data := make([]T, 0, rows*cols)
	for _, row := range values {
		data = append(data, row...)
	}

	return &Grid[T]{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the number of rows.
// Complexity: O(1).
func (g *Grid[T]) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
// Complexity: O(1).
func (g *Grid[T]) Cols() int {
	return g.cols
}

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (g *Grid[T]) indexOf(op string, row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, indexErrorf(op, row, col, ErrOutOfRange)
	}

	return row*g.cols + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from the flat slice.
// Complexity: O(1).
func (g *Grid[T]) At(row, col int) (T, error) {
	idx, err := g.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return g.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into the flat slice.
// Complexity: O(1).
func (g *Grid[T]) Set(row, col int, v T) error {
	idx, err := g.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	g.data[idx] = v

	return nil
}

// Fill assigns v to every cell of the grid.
// Complexity: O(rows×cols).
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy of the grid, independent of the original.
// Complexity: O(rows×cols) time and memory.
func (g *Grid[T]) Clone() *Grid[T] {
	cp := make([]T, len(g.data))
	copy(cp, g.data)

	return &Grid[T]{rows: g.rows, cols: g.cols, data: cp}
}

// String implements fmt.Stringer for easy debugging: one bracketed row per
// line, values comma-separated.
// Complexity: O(rows×cols) for string construction.
func (g *Grid[T]) String() string {
	var s string
	for i := 0; i < g.rows; i++ {
		s += "["
		for j := 0; j < g.cols; j++ {
			// compute flat index directly for performance
			s += fmt.Sprintf("%v", g.data[i*g.cols+j])
			if j < g.cols-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
