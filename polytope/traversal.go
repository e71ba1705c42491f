// SPDX-License-Identifier: MIT

package polytope

import (
	"fmt"
	"slices"
)

// Walk is a breadth-first traversal of the edge graph.
//
// Depth[i] is the number of edges between the start and vertex i, or -1
// when i is unreachable; Parent[i] is the previous vertex on one shortest
// path (-1 for the start and unreachable vertices).
type Walk struct {
	Start  int
	Order  []int
	Depth  []int
	Parent []int
}

// queueItem pairs a vertex with its depth.
type queueItem struct {
	v, depth int
}

// BFS walks the edge graph from start. Neighbors are visited in ascending
// index order, so the walk is deterministic.
// Complexity: O(V + E).
func (p *Polytope) BFS(start int) (*Walk, error) {
	n := len(p.original)
	if err := checkIndex(start, n); err != nil {
		return nil, fmt.Errorf("Polytope.BFS: %w", err)
	}
	w := &Walk{
		Start:  start,
		Order:  make([]int, 0, n),
		Depth:  slices.Repeat([]int{-1}, n),
		Parent: slices.Repeat([]int{-1}, n),
	}
	queue := make([]queueItem, 0, n)
	w.Depth[start] = 0
	queue = append(queue, queueItem{v: start})
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		w.Order = append(w.Order, item.v)
		for _, nbr := range p.adj[item.v] {
			if w.Depth[nbr] >= 0 {
				continue
			}
			w.Depth[nbr] = item.depth + 1
			w.Parent[nbr] = item.v
			queue = append(queue, queueItem{v: nbr, depth: item.depth + 1})
		}
	}

	return w, nil
}

// PathTo returns the vertices from the walk's start to v, both included, or
// nil when v was not reached.
func (w *Walk) PathTo(v int) []int {
	if v < 0 || v >= len(w.Depth) || w.Depth[v] < 0 {
		return nil
	}
	path := make([]int, 0, w.Depth[v]+1)
	for cur := v; cur >= 0; cur = w.Parent[cur] {
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path
}

// Eccentricity is the largest depth reached.
func (w *Walk) Eccentricity() int { return slices.Max(w.Depth) }

// Connected reports whether every vertex is reachable from vertex 0.
func (p *Polytope) Connected() bool {
	w, err := p.BFS(0)

	return err == nil && len(w.Order) == len(p.original)
}

// Diameter is the longest shortest edge path between two vertices, or -1
// when the edge graph is disconnected.
// Complexity: O(V·(V + E)).
func (p *Polytope) Diameter() int {
	best := 0
	for v := range p.original {
		w, _ := p.BFS(v)
		if len(w.Order) != len(p.original) {
			return -1
		}
		best = max(best, w.Eccentricity())
	}

	return best
}
