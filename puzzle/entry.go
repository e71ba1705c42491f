// SPDX-License-Identifier: MIT

package puzzle

// Outcome is the verdict on an entry after a press.
type Outcome int

const (
	// Pending means more presses are needed.
	Pending Outcome = iota
	// Accepted means the entered values sum to the target.
	Accepted
	// Rejected means the target can no longer be reached.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	}

	return "unknown"
}

// Entry validates the presses for one number.
//
// After every press:
//   - sum > target ⇒ Rejected
//   - sum == target and every counted value entered ⇒ Accepted
//   - sum + remaining·(palette−1) < target ⇒ Rejected
//
// Once Accepted or Rejected, further presses are ignored.
type Entry struct {
	target  int
	palette int

	count   int // -1 until the first press
	values  []int
	sum     int
	outcome Outcome
}

// NewEntry starts an entry for target with a palette of the given size.
func NewEntry(target, palette int) *Entry {
	return &Entry{target: target, palette: palette, count: -1}
}

// Press records one value and returns the verdict.
func (e *Entry) Press(v int) Outcome {
	if e.outcome != Pending {
		return e.outcome
	}
	if e.count < 0 {
		e.count = v
	} else {
		e.values = append(e.values, v)
		e.sum += v
	}
	e.outcome = e.judge()

	return e.outcome
}

func (e *Entry) judge() Outcome {
	remaining := e.Remaining()
	switch {
	case e.sum > e.target:
		return Rejected
	case e.sum == e.target && remaining == 0:
		return Accepted
	case e.sum+remaining*(e.palette-1) < e.target:
		return Rejected
	}

	return Pending
}

// Target returns the number being entered.
func (e *Entry) Target() int { return e.target }

// Count returns the announced number of values, or -1 before the first press.
func (e *Entry) Count() int { return e.count }

// Values returns the values entered after the count.
func (e *Entry) Values() []int { return append([]int(nil), e.values...) }

// Sum returns the total of the entered values.
func (e *Entry) Sum() int { return e.sum }

// Remaining returns how many values are still expected.
func (e *Entry) Remaining() int {
	if e.count < 0 {
		return 0
	}

	return max(0, e.count-len(e.values))
}

// Outcome returns the current verdict.
func (e *Entry) Outcome() Outcome { return e.outcome }
