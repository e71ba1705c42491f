// SPDX-License-Identifier: MIT

package vecn

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/dimking/matrix"
)

// Vec is an immutable point or direction in R^n.
// Every operation returns a fresh Vec; the backing slice is never shared.
// Vec holds a slice, so == does not compile on it; use ValueEquals.
type Vec struct {
	c []float64
}

// New copies coords into a new Vec.
func New(coords ...float64) Vec {
	c := make([]float64, len(coords))
	copy(c, coords)

	return Vec{c: c}
}

// Zero returns the origin of R^n.
func Zero(n int) Vec {
	if n < 0 {
		n = 0
	}

	return Vec{c: make([]float64, n)}
}

// Dim returns the number of components.
func (v Vec) Dim() int { return len(v.c) }

// At returns component i, or 0 when i is outside [0, Dim).
func (v Vec) At(i int) float64 {
	if i < 0 || i >= len(v.c) {
		return 0
	}

	return v.c[i]
}

// Components returns a copy of the coordinates.
func (v Vec) Components() []float64 {
	out := make([]float64, len(v.c))
	copy(out, v.c)

	return out
}

func mismatch(op string, a, b int) error {
	return fmt.Errorf("vecn.%s(%d vs %d): %w", op, a, b, matrix.ErrDimensionMismatch)
}

// Add returns v + o.
func (v Vec) Add(o Vec) (Vec, error) {
	if len(v.c) != len(o.c) {
		return Vec{}, mismatch("Add", len(v.c), len(o.c))
	}
	out := make([]float64, len(v.c))
	for i := range v.c {
		out[i] = v.c[i] + o.c[i]
	}

	return Vec{c: out}, nil
}

// Sub returns v − o.
func (v Vec) Sub(o Vec) (Vec, error) {
	if len(v.c) != len(o.c) {
		return Vec{}, mismatch("Sub", len(v.c), len(o.c))
	}
	out := make([]float64, len(v.c))
	for i := range v.c {
		out[i] = v.c[i] - o.c[i]
	}

	return Vec{c: out}, nil
}

// Scale returns k·v.
func (v Vec) Scale(k float64) Vec {
	out := make([]float64, len(v.c))
	for i, x := range v.c {
		out[i] = x * k
	}

	return Vec{c: out}
}

// Dot returns Σ v[i]·o[i].
func (v Vec) Dot(o Vec) (float64, error) {
	if len(v.c) != len(o.c) {
		return 0, mismatch("Dot", len(v.c), len(o.c))
	}
	var s float64
	for i := range v.c {
		s += v.c[i] * o.c[i]
	}

	return s, nil
}

// Norm returns the Euclidean length.
func (v Vec) Norm() float64 {
	var s float64
	for _, x := range v.c {
		s += x * x
	}

	return math.Sqrt(s)
}

// Extend returns v with extra components appended.
func (v Vec) Extend(extra ...float64) Vec {
	out := make([]float64, 0, len(v.c)+len(extra))
	out = append(out, v.c...)
	out = append(out, extra...)

	return Vec{c: out}
}

// ValueEquals reports same length and bit-exact components.
func ValueEquals(a, b Vec) bool {
	if len(a.c) != len(b.c) {
		return false
	}
	for i := range a.c {
		if a.c[i] != b.c[i] {
			return false
		}
	}

	return true
}

// String renders "(x, y, ...)".
func (v Vec) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, x := range v.c {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", x)
	}
	sb.WriteByte(')')

	return sb.String()
}
