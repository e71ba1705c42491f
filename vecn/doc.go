// Package vecn provides the immutable n-dimensional coordinate vector used by
// the polytope engine, a small 3-vector type, and the deterministic projection
// from R^n down to R^3.
//
// Projection:
//
//	p = (v[0], v[1], v[2]) + Σ_{d≥3} v[d]·basis[d−3]
//
// The basis vectors are generated lazily and cached process-wide; for any
// dimension count they are identical on every run.
package vecn
