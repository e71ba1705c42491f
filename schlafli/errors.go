// SPDX-License-Identifier: MIT

package schlafli

import (
	"errors"
	"fmt"
)

var (
	// ErrPolytopeGeneration is matched by every error Generate returns.
	ErrPolytopeGeneration = errors.New("schlafli: unable to generate polytope")

	// ErrMalformedSymbol signals a symbol that does not parse, is empty, or
	// holds an entry that is not a fraction ≥ 2.
	ErrMalformedSymbol = errors.New("schlafli: malformed symbol")

	// ErrHyperbolic signals a symbol whose half-dihedral recurrence leaves
	// [0, 1]: the symbol describes a hyperbolic tiling, not a finite polytope.
	ErrHyperbolic = errors.New("schlafli: symbol is not spherical")

	// ErrOrbitTooLarge signals that the vertex orbit exceeded the vertex cap.
	ErrOrbitTooLarge = errors.New("schlafli: vertex orbit exceeds limit")

	// ErrDegenerate signals a structure that collapses when normalized
	// (zero projected magnitude).
	ErrDegenerate = errors.New("schlafli: degenerate structure")
)

// generationErrorf joins cause under ErrPolytopeGeneration with a call-site tag.
func generationErrorf(tag string, cause error) error {
	return fmt.Errorf("%s: %w: %w", tag, ErrPolytopeGeneration, cause)
}
