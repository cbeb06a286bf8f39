// Package grid: element-wise arithmetic over numeric grids.
// Accumulate and Sum are free functions constrained to Number rather than
// methods on Grid[T], so non-numeric instantiations (e.g. Grid[string])
// remain valid containers while any attempt to do arithmetic on them is
// rejected at compile time.
package grid

// Accumulate replaces every cell of dst with dst[i,j] + src[i,j], in place.
// src is never modified. The loop runs over the flat row-major buffers in a
// single deterministic pass.
// Stage 1 (Validate): non-nil operands, identical shapes.
// Stage 2 (Execute): flat element-wise addition.
// Returns ErrNilGrid or ErrDimensionMismatch on precondition violations;
// dst is untouched on error.
// Complexity: O(rows×cols) time, O(1) extra memory.
func Accumulate[T Number](dst, src *Grid[T]) error {
	if err := ValidateNotNil(dst); err != nil {
		return gridErrorf("Accumulate", err)
	}
	if err := ValidateNotNil(src); err != nil {
		return gridErrorf("Accumulate", err)
	}
	if err := ValidateSameShape(dst, src); err != nil {
		return gridErrorf("Accumulate", err)
	}

	for i := range dst.data {
		dst.data[i] += src.data[i]
	}

	return nil
}

// Sum returns the total of every cell in the grid. A zero-sized grid sums
// to T's zero value.
// Complexity: O(rows×cols) time, O(1) memory.
func Sum[T Number](g *Grid[T]) (T, error) {
	var total T
	if err := ValidateNotNil(g); err != nil {
		return total, gridErrorf("Sum", err)
	}

	for _, v := range g.data {
		total += v
	}

	return total, nil
}
