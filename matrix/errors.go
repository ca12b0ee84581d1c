// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (optionally wrapped with %w) and
// tests match them via errors.Is. Nothing in this package panics on user input.

package matrix

import "errors"

var (
	// ErrInvalidDimensions is returned when a requested shape has rows<=0 or cols<=0.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes (e.g., a non-square
	// matrix where a square one is required).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix is returned when a nil Matrix is passed in.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrAsymmetry signals |a_ij − a_ji| > tol for some i, j.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals |a_ii| > tol for some i.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")
)
