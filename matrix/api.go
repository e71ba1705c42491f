// SPDX-License-Identifier: MIT
// Package matrix - public constructors.
//
// AI-Hints:
//   - NewIdentity is the base every PlaneRotation starts from.

package matrix

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}
