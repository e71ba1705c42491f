// Package matrix offers the dense linear algebra the polytope engine is built on.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors that
//     return sentinel errors instead of panicking.
//   - Kernels: Mul, MatVec, Transpose, Scale, Sub, Outer, AllClose.
//   - Geometric transforms: PlaneRotation (rotation inside one coordinate
//     plane of R^n), Householder (reflection through a hyperplane) and the
//     homogeneous helpers Homogenize, ExpandHomogeneous and ApplyHomogeneous
//     used to represent affine reflections as n×(n+1) matrices.
//
// Homogeneous layout:
//
//	n×(n+1) matrix H acting on v ∈ R^n:  y_i = Σ_j H[i][j]·v[j] + H[i][n]
//
// The last column is the translation; the implicit constant 1 of the
// homogeneous coordinate is never stored in the vector.
//
// Every operand is checked: a vector or matrix whose size does not match is
// rejected with ErrDimensionMismatch.
package matrix
