// Package grid provides a generic rectangular 2D container, Grid[T], with
// bounds-checked access, element-wise accumulation over numeric element
// types, and simple dimension reporting.
//
// What:
//
//   - Grid[T] stores rows×cols elements of any type T in a dense, row-major
//     flat slice. Dimensions are fixed at construction.
//   - New allocates a zero-valued grid; From2D deep-copies a rectangular
//     [][]T; Clone deep-copies an existing grid.
//   - At/Set validate indices and return ErrOutOfRange instead of panicking.
//   - Accumulate performs dst[i,j] += src[i,j] in place for numeric T;
//     Sum totals every cell.
//   - DescribeDimensions and DescribeSolver write human-readable dimension
//     reports to any io.Writer.
//
// Why:
//
//   - Teaching material: the smallest useful container with every
//     precondition validated at the API boundary.
//   - Accumulator grids: score boards, heat maps, tally tables.
//
// Complexity:
//
//   - New/From2D/Clone: O(rows×cols) time and memory.
//   - At/Set/InBounds/Rows/Cols: O(1).
//   - Accumulate/Sum/Fill/String: O(rows×cols).
//
// Errors:
//
//   - ErrBadShape: negative rows or cols at construction.
//   - ErrNonRectangular: ragged input to From2D.
//   - ErrOutOfRange: row or column index outside the valid range.
//   - ErrDimensionMismatch: operands of an element-wise operation differ
//     in shape.
//   - ErrNilGrid: a nil *Grid was passed where a grid is required.
//
// Arithmetic is intentionally NOT a method set on Grid[T]: Accumulate and
// Sum are free functions constrained to Number, so a Grid[string] compiles
// as a container but any attempt to accumulate it is rejected at compile
// time.
package grid
