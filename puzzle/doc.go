// Package puzzle turns a rotating polytope into a solvable puzzle.
//
// The player watches five rotations, each inside one coordinate plane, and
// reads the Schläfli symbol off the shape. Each rotation (A, B) in n
// dimensions is worth A·n + B, and each symbol entry contributes its digit.
// Every number is then entered with colored vertices: the first press gives
// how many values follow, the remaining presses are values whose sum must
// equal the number. A color's value is its position in the session palette.
//
// Module ties it together: it generates the shape, drives the rotation
// animation, moves through Rotating → PreSolving → Solving → Solved, and
// reports passes and strikes to a Reporter.
package puzzle
