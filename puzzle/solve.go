// SPDX-License-Identifier: MIT

package puzzle

import (
	"fmt"

	"github.com/katalvlaran/dimking/schlafli"
)

// SolveNumbers lists the numbers the player must enter: one per rotation
// (RotationValue in sym's dimension), then one digit per symbol entry.
func SolveNumbers(pairs []RotationPair, sym schlafli.Symbol) ([]int, error) {
	if len(pairs) == 0 {
		return nil, ErrNoRotations
	}
	n := sym.Dimension()
	out := make([]int, 0, len(pairs)+len(sym))
	for _, p := range pairs {
		if !p.Valid(n) {
			return nil, fmt.Errorf("SolveNumbers: %v in %d dimensions: %w", p, n, ErrInvalidAxis)
		}
		out = append(out, RotationValue(p, n))
	}

	return append(out, sym.Digits()...), nil
}

// Decompose writes target as a press sequence for a palette of the given
// size: the count of values first, then values of at most palette−1 each,
// largest first. Zero is the single press [0].
func Decompose(target, palette int) ([]int, error) {
	switch {
	case target < 0:
		return nil, fmt.Errorf("Decompose(%d): %w", target, ErrNegativeTarget)
	case target == 0:
		return []int{0}, nil
	case palette < 2:
		return nil, fmt.Errorf("Decompose(%d, palette=%d): %w", target, palette, ErrPaletteTooSmall)
	}
	step := palette - 1
	count := (target + step - 1) / step
	out := make([]int, 0, count+1)
	out = append(out, count)
	for rem := target; rem > 0; rem -= min(rem, step) {
		out = append(out, min(rem, step))
	}

	return out, nil
}
