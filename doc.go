// Package lvlgrid is a small in-memory playground for rectangular 2D data:
// a generic grid container with bounds-checked access, element-wise
// accumulation and simple dimension reporting.
//
// 🚀 What is lvlgrid?
//
//	A compact, beginner-friendly library that brings together:
//		• Grid[T]: a generic, row-major 2D container for any element type
//		• Bounds-checked At/Set with explicit sentinel errors (no panics)
//		• Accumulate: in-place element-wise addition over numeric grids
//		• Describe helpers: human-readable dimension reports to any io.Writer
//
// ✨ Why choose lvlgrid?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – every precondition is validated, every error
//     is a matchable sentinel
//   - Pure Go – no cgo, no hidden deps
//   - Compile-time safety – arithmetic is constrained to numeric element
//     types; a Grid[string] stores text but cannot be accumulated
//
// Everything lives under one subpackage:
//
//	grid/ — the Grid[T] container, arithmetic and reporting helpers
//
// Quick ASCII example:
//
//	    10 0 0        5 0 0        15 0 0
//	     0 0 0   +=   0 0 0    →     0 0 0
//	     0 0 0        0 0 0         0 0 0
//
//	two 3×3 grids accumulated element-wise, in place.
//
// Dive into examples/ for a runnable demo.
//
//	go get github.com/katalvlaran/lvlgrid/grid
package lvlgrid
