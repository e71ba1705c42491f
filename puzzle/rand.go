// SPDX-License-Identifier: MIT

package puzzle

import "math/rand"

// newChildRand derives an independent source for a goroutine that must not
// share parent.
func newChildRand(parent *rand.Rand) *rand.Rand {
	return rand.New(rand.NewSource(parent.Int63()))
}
