// SPDX-License-Identifier: MIT

// Package matrix - linear algebra kernels.
//
// Purpose:
//   - Mul, MatVec, Transpose, Scale, Sub, Outer and AllClose with strict
//     shape validation.
//
// Implementation:
//   - Every kernel first takes a flat row-major view of its operands with
//     asDense (free for *Dense, one copy for other Matrix implementations)
//     and then runs a single loop over the buffers.
//
// Determinism:
//   - Fixed loop orders (i→k→j for Mul, i→j otherwise); identical inputs give
//     bit-identical outputs, which the orbit enumeration relies on.
package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the neutral accumulator for dot products.
const ZeroSum = 0.0

// operation tags for error wrapping.
const (
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opSub       = "Sub"
	opOuter     = "Outer"
	opAllClose  = "AllClose"
	opAsDense   = "asDense"
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy read
// through At. The result must be treated as read-only.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opAsDense, err)
	}
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if out.data[i*out.c+j], err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opAsDense, err)
			}
		}
	}

	return out, nil
}

// densePair validates two same-shaped operands and returns their views.
func densePair(tag string, a, b Matrix) (*Dense, *Dense, error) {
	da, err := asDense(a)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	if err = ValidateSameShape(da, db); err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}

	return da, db, nil
}

// Mul returns the matrix product a × b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) and take flat views.
//   - Stage 2: accumulate row i of the result as Σ_k a[i][k]·row_k(b),
//     skipping zero coefficients (rotation matrices are mostly zeros).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	for i := 0; i < da.r; i++ {
		out := res.data[i*res.c : (i+1)*res.c]
		for k, av := range da.data[i*da.c : (i+1)*da.c] {
			if av == 0 {
				continue
			}
			for j, bv := range db.data[k*db.c : (k+1)*db.c] {
				out[j] += av * bv
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err = ValidateVecLen(x, d.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, d.r)
	for i := range y {
		acc := ZeroSum
		for j, mv := range d.data[i*d.c : (i+1)*d.c] {
			acc += mv * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			res.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return res, nil
}

// Scale returns alpha·m as a new matrix.
// Errors: ErrNilMatrix, ErrNaNInf (non-finite alpha).
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(d.r, d.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for i, v := range d.data {
		res.data[i] = alpha * v
	}

	return res, nil
}

// Sub returns a − b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) {
	da, db, err := densePair(opSub, a, b)
	if err != nil {
		return nil, err
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	for i, av := range da.data {
		res.data[i] = av - db.data[i]
	}

	return res, nil
}

// Outer returns the outer product a·bᵀ (len(a)×len(b)).
// Errors: ErrNilMatrix for nil vectors, ErrInvalidDimensions for empty ones.
// Complexity: Time O(|a|·|b|), Space O(|a|·|b|).
func Outer(a, b []float64) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opOuter, ErrNilMatrix)
	}
	res, err := NewDense(len(a), len(b))
	if err != nil {
		return nil, matrixErrorf(opOuter, err)
	}
	for i, av := range a {
		row := res.data[i*res.c : (i+1)*res.c]
		for j, bv := range b {
			row[j] = av * bv
		}
	}

	return res, nil
}

// AllClose reports whether |a[i,j] − b[i,j]| ≤ eps for every cell.
// eps comes from WithEpsilon (DefaultEpsilon otherwise).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	da, db, err := densePair(opAllClose, a, b)
	if err != nil {
		return false, err
	}
	eps := gatherOptions(opts...).eps
	for i, av := range da.data {
		if math.Abs(av-db.data[i]) > eps {
			return false, nil
		}
	}

	return true, nil
}
