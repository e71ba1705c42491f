// Package dimking builds regular polytopes of any dimension from their
// Schläfli symbols and turns them into the "Dimension King" puzzle.
//
// Layout:
//
//	matrix     dense row-major matrices, plane rotations, reflections
//	vecn       n-dimensional vectors and the fixed projection to 3D
//	schlafli   symbol parsing and the reflection-group polytope generator
//	polytope   live vertex state, rotation, projection, incidence, traversal
//	animation  easing, frame clocks and the rotation driver
//	puzzle     solve numbers, color entry validation, the session state machine
//	command    remote text commands ("go", "press r b k")
//	cmd/dimking  CLI: generate, shapes, play
//
// Quick start:
//
//	st, err := schlafli.GenerateString("4 3 3")
//	p, err := polytope.New(st, polytope.WithScale(2.5))
//	err = p.Rotate(0, 3, math.Pi/2)
//	pos := p.Projected()
//
// Generation errors wrap schlafli.ErrPolytopeGeneration; dimension
// mismatches wrap matrix.ErrDimensionMismatch.
package dimking
