// SPDX-License-Identifier: MIT

// Package matrix - geometric transforms in R^n.
//
// Purpose:
//   - PlaneRotation: rotation inside the (a,b) coordinate plane.
//   - Householder: reflection through the hyperplane orthogonal to v.
//   - Homogenize / ExpandHomogeneous / ApplyHomogeneous: n×(n+1) affine maps.
//
// AI-Hints:
//   - Reflection groups are built by lifting every lower-dimensional generator
//     with ExpandHomogeneous and adding one Homogenize(Householder(v)).
//   - ApplyHomogeneous appends the homogeneous 1 and reuses MatVec.
package matrix

import (
	"fmt"
	"math"
)

const (
	opPlaneRotation     = "PlaneRotation"
	opHouseholder       = "Householder"
	opHomogenize        = "Homogenize"
	opExpandHomogeneous = "ExpandHomogeneous"
	opApplyHomogeneous  = "ApplyHomogeneous"
)

// householderFactor is the 2 in I − 2·v·vᵀ.
const householderFactor = 2.0

// PlaneRotation returns the n×n rotation by theta inside the (a,b) plane.
// The matrix is the identity except:
//
//	R[a][a] =  cos θ    R[a][b] = sin θ
//	R[b][a] = −sin θ    R[b][b] = cos θ
//
// Errors: ErrInvalidPlane (a==b or out of range), ErrNaNInf (non-finite theta).
// Complexity: O(n²) allocation, O(n) writes.
func PlaneRotation(n, a, b int, theta float64) (*Dense, error) {
	if err := ValidatePlane(n, a, b); err != nil {
		return nil, matrixErrorf(opPlaneRotation, err)
	}
	if isNonFinite(theta) {
		return nil, matrixErrorf(opPlaneRotation, ErrNaNInf)
	}
	r, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opPlaneRotation, err)
	}
	sin, cos := math.Sincos(theta)
	r.data[a*n+a] = cos
	r.data[a*n+b] = sin
	r.data[b*n+a] = -sin
	r.data[b*n+b] = cos

	return r, nil
}

// Householder returns I − 2·v·vᵀ.
// For a unit v this is the reflection through the hyperplane v⊥.
// Complexity: O(n²).
func Householder(v []float64) (*Dense, error) {
	if v == nil {
		return nil, matrixErrorf(opHouseholder, ErrNilMatrix)
	}
	for i, x := range v {
		if isNonFinite(x) {
			return nil, matrixErrorf(opHouseholder, fmt.Errorf("v[%d]: %w", i, ErrNaNInf))
		}
	}
	outer, err := Outer(v, v)
	if err != nil {
		return nil, matrixErrorf(opHouseholder, err)
	}
	n := len(v)
	h, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opHouseholder, err)
	}
	for i := range h.data {
		h.data[i] -= householderFactor * outer.data[i]
	}

	return h, nil
}

// Homogenize turns an n×n linear map into the n×(n+1) homogeneous form
// (zero translation column appended).
// Errors: ErrNonSquare, ErrNilMatrix.
func Homogenize(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opHomogenize, err)
	}
	n := m.Rows()
	h, err := NewDense(n, n+1)
	if err != nil {
		return nil, matrixErrorf(opHomogenize, err)
	}
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opHomogenize, err)
			}
			h.data[i*(n+1)+j] = v
		}
	}

	return h, nil
}

// ExpandHomogeneous lifts an n×(n+1) homogeneous transform into dimension n+1.
//
// Implementation:
//   - Stage 1: every existing row gets a 0 inserted before its translation entry.
//   - Stage 2: a new row fixes the new coordinate (1 on its diagonal, no translation).
//
// The result is (n+1)×(n+2) and acts on the first n coordinates exactly as h did.
// Errors: ErrDimensionMismatch (h not n×(n+1)), ErrNilMatrix.
// Complexity: O(n²).
func ExpandHomogeneous(h Matrix) (*Dense, error) {
	if err := ValidateHomogeneous(h); err != nil {
		return nil, matrixErrorf(opExpandHomogeneous, err)
	}
	n := h.Rows()
	out, err := NewDense(n+1, n+2)
	if err != nil {
		return nil, matrixErrorf(opExpandHomogeneous, err)
	}
	cols := n + 2
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, err = h.At(i, j); err != nil {
				return nil, matrixErrorf(opExpandHomogeneous, err)
			}
			out.data[i*cols+j] = v
		}
		// column n stays 0 (the inserted coordinate)
		if v, err = h.At(i, n); err != nil {
			return nil, matrixErrorf(opExpandHomogeneous, err)
		}
		out.data[i*cols+n+1] = v
	}
	out.data[n*cols+n] = 1

	return out, nil
}

// ApplyHomogeneous computes y_i = Σ_j h[i][j]·v[j] + h[i][n] for an
// n×(n+1) transform h and v ∈ R^n, as MatVec(h, [v; 1]).
// Errors: ErrDimensionMismatch when h is not n×(n+1) or len(v) != n.
// Complexity: O(n²).
func ApplyHomogeneous(h Matrix, v []float64) ([]float64, error) {
	if err := ValidateHomogeneous(h); err != nil {
		return nil, matrixErrorf(opApplyHomogeneous, err)
	}
	n := h.Rows()
	if err := ValidateVecLen(v, n); err != nil {
		return nil, matrixErrorf(opApplyHomogeneous, err)
	}
	x := make([]float64, n+1)
	copy(x, v)
	x[n] = 1
	y, err := MatVec(h, x)
	if err != nil {
		return nil, matrixErrorf(opApplyHomogeneous, err)
	}

	return y, nil
}
