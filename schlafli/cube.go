// SPDX-License-Identifier: MIT

package schlafli

import "fmt"

// ErrCountMismatch signals a {4,3,…,3} structure whose element counts
// differ from those of the n-cube.
var ErrCountMismatch = fmt.Errorf("%w: element counts differ from the n-cube", ErrPolytopeGeneration)

// CubeElementCount returns the number of m-dimensional elements of the
// n-cube, using f(n, m) = 2·f(n−1, m) + f(n−1, m−1) with f(0, 0) = 1.
// Out-of-range arguments yield 0.
func CubeElementCount(n, m int) int {
	if n < 0 || m < 0 || m > n {
		return 0
	}
	// row[k] holds f(i, k) for the current i
	row := make([]int, n+1)
	row[0] = 1
	for i := 1; i <= n; i++ {
		for k := i; k >= 0; k-- {
			v := 2 * row[k]
			if k > 0 {
				v += row[k-1]
			}
			row[k] = v
		}
	}

	return row[m]
}

// IsCube reports whether s is the hypercube symbol {4} or {4,3,…,3}.
func (s Symbol) IsCube() bool {
	if len(s) == 0 || s[0] != (Fraction{Num: 4, Den: 1}) {
		return false
	}
	for _, f := range s[1:] {
		if f != (Fraction{Num: 3, Den: 1}) {
			return false
		}
	}

	return true
}

// VerifyCubeCounts cross-checks st.Counts against CubeElementCount when st
// is a hypercube. It reports whether the check applied.
func VerifyCubeCounts(st *Structure) (bool, error) {
	if st == nil || !st.Symbol.IsCube() {
		return false, nil
	}
	for k, got := range st.Counts() {
		if want := CubeElementCount(st.Dimension, k); got != want {
			return true, fmt.Errorf("VerifyCubeCounts(%s): %d elements of dimension %d, want %d: %w",
				st.Symbol, got, k, want, ErrCountMismatch)
		}
	}

	return true, nil
}
