// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/plane checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// AI-Hints:
//  - Use ValidateVecLen for any MatVec-like operations to avoid ad hoc length code.
//  - Use ValidatePlane before building rotations; a==b would yield the identity
//    with a doubled diagonal entry, which is never what a caller meant.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible checks a, b non-nil and a.Cols == b.Rows.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateHomogeneous checks that h has the n×(n+1) homogeneous layout.
func ValidateHomogeneous(h Matrix) error {
	if err := ValidateNotNil(h); err != nil {
		return err
	}
	if h.Cols() != h.Rows()+1 {
		return validatorErrorf("ValidateHomogeneous", ErrDimensionMismatch)
	}

	return nil
}

// ValidatePlane checks that (a, b) names a coordinate plane of R^n:
// 0 ≤ a,b < n and a ≠ b.
func ValidatePlane(n, a, b int) error {
	if n < 2 || a < 0 || b < 0 || a >= n || b >= n || a == b {
		return validatorErrorf(fmt.Sprintf("ValidatePlane(n=%d,a=%d,b=%d)", n, a, b), ErrInvalidPlane)
	}

	return nil
}
