// Package matrix offers the dense float64 storage behind pairwise-distance
// computations.
//
// The matrix package provides:
//
//   - Matrix, a minimal bounds-checked two-dimensional interface.
//   - Dense, a row-major implementation with a finite-only numeric policy.
//   - Row accessors that hand out copies, so callers may sort a row without
//     disturbing the matrix it came from.
//   - Validators for the structural contracts of distance matrices
//     (square, zero diagonal, symmetric within a tolerance).
//
// Dense matrices cost O(r·c) memory; they are meant for the small,
// UI-bounded point sets halfcover works with.
package matrix
