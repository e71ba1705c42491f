// Package animation paces the rotation of a polytope.
//
// Ease and Tracker turn elapsed time into monotonic angle increments; Clock
// abstracts the frame source so the same Driver runs against wall-clock
// frames (TickerClock) or a deterministic fixed step (FixedClock); Driver runs
// the rotate / pause / return-to-origin loop in its own goroutine until asked
// to transition.
package animation
