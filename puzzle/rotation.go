// SPDX-License-Identifier: MIT

package puzzle

import (
	"fmt"
	"strings"
)

// AxisNames names the axes in order: X, Y, Z, then W, V, U, ... backwards
// through the alphabet.
const AxisNames = "XYZWVUTSRQPONMLKJIHGFEDCBA"

// RotationPair is a rotation inside the plane of axes A and B.
type RotationPair struct {
	A int `json:"a"`
	B int `json:"b"`
}

// String renders the pair as two axis letters, e.g. "XW".
func (p RotationPair) String() string {
	if p.A < 0 || p.A >= len(AxisNames) || p.B < 0 || p.B >= len(AxisNames) {
		return fmt.Sprintf("(%d,%d)", p.A, p.B)
	}

	return string([]byte{AxisNames[p.A], AxisNames[p.B]})
}

// Valid reports whether p names a plane of R^n.
func (p RotationPair) Valid(n int) bool {
	return p.A >= 0 && p.B >= 0 && p.A < n && p.B < n && p.A != p.B
}

// RotationPairs lists every ordered axis pair for n dimensions:
// XY, YX, XZ, ZX, ..., YZ, ZY, ...
func RotationPairs(n int) []RotationPair {
	if n < 2 {
		return nil
	}
	out := make([]RotationPair, 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, RotationPair{A: i, B: j}, RotationPair{A: j, B: i})
		}
	}

	return out
}

// ParseRotationPair reads two axis letters (case-insensitive) for n dimensions.
func ParseRotationPair(text string, n int) (RotationPair, error) {
	s := strings.ToUpper(strings.TrimSpace(text))
	if len(s) != 2 || n > len(AxisNames) {
		return RotationPair{}, fmt.Errorf("ParseRotationPair(%q): %w", text, ErrInvalidAxis)
	}
	axes := AxisNames[:max(n, 0)]
	p := RotationPair{A: strings.IndexByte(axes, s[0]), B: strings.IndexByte(axes, s[1])}
	if !p.Valid(n) {
		return RotationPair{}, fmt.Errorf("ParseRotationPair(%q, n=%d): %w", text, n, ErrInvalidAxis)
	}

	return p, nil
}

// RotationValue is A·n + B.
func RotationValue(p RotationPair, n int) int { return p.A*n + p.B }
