// SPDX-License-Identifier: MIT

package animation

import "math"

// DefaultSteepness is the exponent used for every eased motion.
const DefaultSteepness = 3.0

// Ease maps linear progress p ∈ [0,1] onto an S-curve:
//
//	ease(p) = pᵏ / (pᵏ + (1−p)ᵏ)
//
// Values outside [0,1] are clamped.
func Ease(p, k float64) float64 {
	if p <= 0 || math.IsNaN(p) {
		return 0
	}
	if p >= 1 {
		return 1
	}
	a := math.Pow(p, k)
	b := math.Pow(1-p, k)

	return a / (a + b)
}

// Tracker accumulates eased progress and hands out only forward increments.
type Tracker struct {
	k    float64
	done float64
}

// NewTracker returns a Tracker using steepness k.
func NewTracker(k float64) *Tracker { return &Tracker{k: k} }

// Advance returns max(0, Ease(p) − done) and adds it to done, so the sum of
// all increments never decreases and never exceeds 1.
func (t *Tracker) Advance(p float64) float64 {
	delta := math.Max(0, Ease(p, t.k)-t.done)
	t.done += delta

	return delta
}

// Finish returns the increment that brings done to exactly 1.
func (t *Tracker) Finish() float64 {
	delta := math.Max(0, 1-t.done)
	t.done = 1

	return delta
}

// Done returns the progress handed out so far.
func (t *Tracker) Done() float64 { return t.done }
