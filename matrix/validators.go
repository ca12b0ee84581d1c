// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the structural checks a distance matrix must pass.
//  - Return sentinel errors wrapped with the validator tag; callers match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// normTol maps a tolerance to a usable non-negative value.
func normTol(tag string, tol float64) (float64, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0, validatorErrorf(tag, ErrNaNInf)
	}
	if tol < 0 {
		tol = -tol
	}

	return tol, nil
}

// ValidateZeroDiagonal checks |a_ii| ≤ tol for every i of a square matrix.
// Complexity: O(n).
func ValidateZeroDiagonal(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateZeroDiagonal", err)
	}
	tol, err := normTol("ValidateZeroDiagonal", tol)
	if err != nil {
		return err
	}

	var v float64
	for i := 0; i < m.Rows(); i++ {
		v, _ = m.At(i, i) // in range after ValidateSquare
		if math.Abs(v) > tol {
			return validatorErrorf("ValidateZeroDiagonal", ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric checks |a_ij − a_ji| ≤ tol for all i<j.
//
// Errors: ErrNilMatrix / ErrDimensionMismatch on structure, ErrNaNInf on a
// bad tolerance, ErrAsymmetry on violation.
// Complexity: O(n²) time, O(1) space.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	tol, err := normTol("ValidateSymmetric", tol)
	if err != nil {
		return err
	}

	n := m.Rows()
	var aij, aji float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ { // upper triangle only
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateDistance composes the checks every distance matrix must pass:
// square, zero diagonal and symmetric, all within tol.
func ValidateDistance(m Matrix, tol float64) error {
	if err := ValidateZeroDiagonal(m, tol); err != nil {
		return err
	}

	return ValidateSymmetric(m, tol)
}
