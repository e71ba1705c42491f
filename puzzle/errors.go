// SPDX-License-Identifier: MIT

package puzzle

import "errors"

var (
	// ErrNoRotations signals an empty rotation list.
	ErrNoRotations = errors.New("puzzle: no rotations defined")

	// ErrPaletteTooSmall signals a palette with fewer than two colors for a
	// positive target: no non-zero value can be entered.
	ErrPaletteTooSmall = errors.New("puzzle: palette too small")

	// ErrNegativeTarget signals a negative number to decompose.
	ErrNegativeTarget = errors.New("puzzle: negative target")

	// ErrInvalidAxis signals an unknown axis letter or an invalid pair.
	ErrInvalidAxis = errors.New("puzzle: invalid rotation axis")

	// ErrUnknownColor signals a color name or letter outside the catalogue.
	ErrUnknownColor = errors.New("puzzle: unknown color")

	// ErrInvalidPalette signals an empty or duplicated palette, or one with
	// more colors than there are vertices.
	ErrInvalidPalette = errors.New("puzzle: invalid palette")

	// ErrNotRotating signals a skip request outside the Rotating state.
	ErrNotRotating = errors.New("puzzle: module is not rotating")

	// ErrNotSolving signals a color press outside the Solving state.
	ErrNotSolving = errors.New("puzzle: module is not accepting input")

	// ErrColorNotShown signals a press of a color no vertex carries.
	ErrColorNotShown = errors.New("puzzle: no vertex has that color")

	// ErrNoShapes signals an empty shape catalogue.
	ErrNoShapes = errors.New("puzzle: no shapes to choose from")
)

var (
	// ErrAlreadyStarted signals a second Start on the same Module.
	ErrAlreadyStarted = errors.New("puzzle: module already started")

	// ErrNotStarted signals an operation before Start.
	ErrNotStarted = errors.New("puzzle: module not started")
)
