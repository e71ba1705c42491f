// SPDX-License-Identifier: MIT

package polytope

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/dimking/vecn"
)

// convexTolerance is the relative slack when comparing a face's edge length
// with the shortest distance between any two of its vertices.
const convexTolerance = 1e-6

// Edge joins two vertices.
type Edge struct {
	A int `json:"a"`
	B int `json:"b"`
}

// NewEdge builds an Edge from an index pair.
func NewEdge(idx []int) (Edge, error) {
	if len(idx) != 2 {
		return Edge{}, fmt.Errorf("NewEdge(%v): %w", idx, ErrStructuralArity)
	}

	return Edge{A: idx[0], B: idx[1]}, nil
}

// Face is a 2-dimensional element.
//
// Vertices is the sorted vertex set as generated; Cycle is the same set in
// boundary order, recovered from the polytope's edges. Convex is false for
// star faces (pentagrams), whose fan triangulation overlaps itself.
type Face struct {
	Vertices []int `json:"vertices"`
	Cycle    []int `json:"cycle"`
	Convex   bool  `json:"convex"`
}

// NewFace builds a Face from its vertex set. Cycle and Convex are filled in
// when the face is attached to a polytope.
func NewFace(idx []int) (Face, error) {
	if len(idx) < 3 {
		return Face{}, fmt.Errorf("NewFace(%v): %w", idx, ErrStructuralArity)
	}
	v := slices.Clone(idx)

	return Face{Vertices: v, Cycle: slices.Clone(v), Convex: true}, nil
}

// checkIndex validates i against the vertex count n.
func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("vertex %d of %d: %w", i, n, ErrIndexOutOfRange)
	}

	return nil
}

// boundaryCycle orders the face's vertices along its edges. It walks from the
// smallest index, always stepping to the neighbor not just visited. When the
// edges do not form a single cycle over the face, the sorted order is kept.
func boundaryCycle(face []int, adj [][]int) []int {
	in := make(map[int]bool, len(face))
	for _, v := range face {
		in[v] = true
	}
	next := func(cur, prev int) int {
		for _, w := range adj[cur] {
			if in[w] && w != prev {
				return w
			}
		}

		return -1
	}

	cycle := make([]int, 0, len(face))
	seen := make(map[int]bool, len(face))
	prev, cur := -1, face[0]
	for len(cycle) < len(face) {
		if seen[cur] {
			return slices.Clone(face)
		}
		seen[cur] = true
		cycle = append(cycle, cur)
		nxt := next(cur, prev)
		if nxt < 0 {
			return slices.Clone(face)
		}
		prev, cur = cur, nxt
	}
	if cur != face[0] {
		return slices.Clone(face)
	}

	return cycle
}

// isConvexCycle reports whether consecutive cycle vertices are nearest
// neighbors within the face, which holds for regular convex polygons only.
func isConvexCycle(cycle []int, verts []vecn.Vec) bool {
	dist := func(i, j int) float64 {
		d, err := verts[i].Sub(verts[j])
		if err != nil {
			return math.NaN()
		}

		return d.Norm()
	}
	shortest := math.Inf(1)
	for i := 0; i < len(cycle); i++ {
		for j := i + 1; j < len(cycle); j++ {
			shortest = math.Min(shortest, dist(cycle[i], cycle[j]))
		}
	}
	side := dist(cycle[0], cycle[1])

	return math.Abs(side-shortest) <= convexTolerance*math.Max(1, shortest)
}
