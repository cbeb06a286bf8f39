// Package grid: domain-facing types shared across the package.
// The Grid type itself lives in grid.go; this file holds the element-type
// constraint for arithmetic.
package grid

// Number is the capability set required by arithmetic over grids: any
// built-in integer or floating-point kind with a defined, well-behaved
// addition operator. Textual and other non-numeric element types are
// excluded, so Accumulate over a Grid[string] fails to compile.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
