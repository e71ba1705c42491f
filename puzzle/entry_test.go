package puzzle_test

import (
	"testing"

	"github.com/katalvlaran/dimking/puzzle"
	"github.com/stretchr/testify/require"
)

// TestEntryLookAhead checks that an entry is rejected as soon as the target
// is out of reach of the remaining presses.
func TestEntryLookAhead(t *testing.T) {
	// 5 entered, one value left, at most 4 more: 7 is still reachable.
	e := puzzle.NewEntry(7, 5)
	require.Equal(t, puzzle.Pending, e.Press(3))
	require.Equal(t, puzzle.Pending, e.Press(4))
	require.Equal(t, puzzle.Pending, e.Press(1))
	require.Equal(t, 5, e.Sum())
	require.Equal(t, 1, e.Remaining())
	require.Equal(t, puzzle.Accepted, e.Press(2))

	// Same state for 10: 5+4 < 10.
	e = puzzle.NewEntry(10, 5)
	require.Equal(t, puzzle.Pending, e.Press(3))
	require.Equal(t, puzzle.Pending, e.Press(4))
	require.Equal(t, puzzle.Rejected, e.Press(1))
}

// TestEntryOvershoot checks that passing the target rejects at once and the
// verdict sticks.
func TestEntryOvershoot(t *testing.T) {
	e := puzzle.NewEntry(5, 10)
	require.Equal(t, puzzle.Pending, e.Press(3))
	require.Equal(t, puzzle.Pending, e.Press(4))
	require.Equal(t, puzzle.Rejected, e.Press(2))
	require.Equal(t, 6, e.Sum())
	// terminal
	require.Equal(t, puzzle.Rejected, e.Press(0))
	require.Equal(t, []int{4, 2}, e.Values())
}

// TestEntryCountTooSmall rejects a count that cannot reach the target with
// the palette's largest value.
func TestEntryCountTooSmall(t *testing.T) {
	e := puzzle.NewEntry(10, 5)
	require.Equal(t, puzzle.Rejected, e.Press(2))
	require.Equal(t, 2, e.Count())

	e = puzzle.NewEntry(3, 5)
	require.Equal(t, puzzle.Rejected, e.Press(0)) // zero values can never sum to 3
}

// TestEntryEarlyExactSumWaitsForCount checks that reaching the sum early
// stays pending until every announced value is in.
func TestEntryEarlyExactSumWaitsForCount(t *testing.T) {
	e := puzzle.NewEntry(4, 10)
	require.Equal(t, puzzle.Pending, e.Press(2))
	require.Equal(t, puzzle.Pending, e.Press(4))
	require.Equal(t, puzzle.Accepted, e.Press(0))
	require.Equal(t, "accepted", e.Outcome().String())
}
