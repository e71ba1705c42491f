// SPDX-License-Identifier: MIT

package polytope

import (
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/dimking/matrix"
	"github.com/katalvlaran/dimking/schlafli"
	"github.com/katalvlaran/dimking/vecn"
	"github.com/rs/zerolog"
)

// Polytope is the live polytope. The zero value is not usable; call New.
type Polytope struct {
	mu sync.RWMutex

	symbol   schlafli.Symbol
	dim      int
	vertices []vecn.Vec
	original []vecn.Vec
	rest     *matrix.Dense // original stacked as V×n rows
	edges    []Edge
	faces    []Face
	adj      [][]int

	dirty     bool
	projected []vecn.Vec3

	handles  []any
	onSelect func(int)

	log zerolog.Logger
}

// New builds a Polytope from a generated structure.
//
// Implementation:
//   - Stage 1: copy (and scale) the vertex coordinates; snapshot them as the originals.
//   - Stage 2: validate every edge (exactly 2 indices) and face (≥ 3), all in range.
//   - Stage 3: build vertex adjacency and recover each face's boundary cycle.
//
// Errors: ErrEmptyStructure, ErrStructuralArity, ErrIndexOutOfRange,
// matrix.ErrDimensionMismatch (vertex of the wrong length).
func New(st *schlafli.Structure, opts ...Option) (*Polytope, error) {
	if st == nil || len(st.Vertices) == 0 {
		return nil, fmt.Errorf("polytope.New: %w", ErrEmptyStructure)
	}
	o := gatherOptions(opts...)

	dim := len(st.Vertices[0])
	verts := make([]vecn.Vec, len(st.Vertices))
	for i, raw := range st.Vertices {
		if len(raw) != dim {
			return nil, fmt.Errorf("polytope.New: vertex %d has %d coordinates, want %d: %w",
				i, len(raw), dim, matrix.ErrDimensionMismatch)
		}
		verts[i] = vecn.New(raw...).Scale(o.scale)
	}
	n := len(verts)

	edges := make([]Edge, 0, len(st.Edges()))
	adj := make([][]int, n)
	for k, idx := range st.Edges() {
		e, err := NewEdge(idx)
		if err != nil {
			return nil, fmt.Errorf("polytope.New: edge %d: %w", k, err)
		}
		if err = checkIndex(e.A, n); err != nil {
			return nil, fmt.Errorf("polytope.New: edge %d: %w", k, err)
		}
		if err = checkIndex(e.B, n); err != nil {
			return nil, fmt.Errorf("polytope.New: edge %d: %w", k, err)
		}
		edges = append(edges, e)
		adj[e.A] = append(adj[e.A], e.B)
		adj[e.B] = append(adj[e.B], e.A)
	}
	for i := range adj {
		slices.Sort(adj[i])
	}

	faces := make([]Face, 0, len(st.Faces()))
	for k, idx := range st.Faces() {
		f, err := NewFace(idx)
		if err != nil {
			return nil, fmt.Errorf("polytope.New: face %d: %w", k, err)
		}
		for _, v := range f.Vertices {
			if err = checkIndex(v, n); err != nil {
				return nil, fmt.Errorf("polytope.New: face %d: %w", k, err)
			}
		}
		f.Cycle = boundaryCycle(f.Vertices, adj)
		f.Convex = isConvexCycle(f.Cycle, verts)
		faces = append(faces, f)
	}

	rest, err := vecn.Stack(verts)
	if err != nil {
		return nil, fmt.Errorf("polytope.New: %w", err)
	}

	p := &Polytope{
		rest:     rest,
		symbol:   slices.Clone(st.Symbol),
		dim:      dim,
		vertices: verts,
		original: slices.Clone(verts),
		edges:    edges,
		faces:    faces,
		adj:      adj,
		dirty:    true,
		handles:  make([]any, n),
		log:      o.log,
	}
	p.log.Debug().
		Str("symbol", p.symbol.String()).
		Int("vertices", n).
		Int("edges", len(edges)).
		Int("faces", len(faces)).
		Msg("polytope loaded")

	return p, nil
}

// Symbol returns the Schläfli symbol the polytope was generated from.
func (p *Polytope) Symbol() schlafli.Symbol { return slices.Clone(p.symbol) }

// Dimension returns n, the number of coordinates per vertex.
func (p *Polytope) Dimension() int { return p.dim }

// VertexCount returns the number of vertices.
func (p *Polytope) VertexCount() int { return len(p.original) }

// Edges returns a copy of the edge list.
func (p *Polytope) Edges() []Edge { return slices.Clone(p.edges) }

// Faces returns a copy of the face list.
func (p *Polytope) Faces() []Face {
	out := make([]Face, len(p.faces))
	for i, f := range p.faces {
		out[i] = Face{Vertices: slices.Clone(f.Vertices), Cycle: slices.Clone(f.Cycle), Convex: f.Convex}
	}

	return out
}

// Vertices returns the current coordinates. Vec is immutable, so the
// returned slice shares nothing mutable with the polytope.
func (p *Polytope) Vertices() []vecn.Vec {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return slices.Clone(p.vertices)
}

// Original returns the coordinates captured at construction.
func (p *Polytope) Original() []vecn.Vec { return slices.Clone(p.original) }

// Rotate turns every vertex by theta inside the (a, b) coordinate plane.
//
// Implementation:
//   - Stage 1: build R = PlaneRotation(n, a, b, theta) and its transpose.
//   - Stage 2: stack the vertices as the rows of V (V×n); the rotated rows
//     are V·Rᵀ, since (R·v)ᵀ = vᵀ·Rᵀ.
//
// Errors: matrix.ErrInvalidPlane, matrix.ErrNaNInf.
// Complexity: O(V·n²).
func (p *Polytope) Rotate(a, b int, theta float64) error {
	r, err := matrix.PlaneRotation(p.dim, a, b, theta)
	if err != nil {
		return fmt.Errorf("Polytope.Rotate: %w", err)
	}
	rt, err := matrix.Transpose(r)
	if err != nil {
		return fmt.Errorf("Polytope.Rotate: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	cur, err := vecn.Stack(p.vertices)
	if err != nil {
		return fmt.Errorf("Polytope.Rotate: %w", err)
	}
	turned, err := matrix.Mul(cur, rt)
	if err != nil {
		return fmt.Errorf("Polytope.Rotate: %w", err)
	}
	next, err := vecn.Unstack(turned)
	if err != nil {
		return fmt.Errorf("Polytope.Rotate: %w", err)
	}
	p.vertices = next
	p.dirty = true

	return nil
}

// SetVertices overwrites every vertex.
// Errors: matrix.ErrDimensionMismatch on a wrong count or vertex length.
func (p *Polytope) SetVertices(vs []vecn.Vec) error {
	if len(vs) != len(p.original) {
		return fmt.Errorf("Polytope.SetVertices: %d vertices, want %d: %w",
			len(vs), len(p.original), matrix.ErrDimensionMismatch)
	}
	for i, v := range vs {
		if v.Dim() != p.dim {
			return fmt.Errorf("Polytope.SetVertices: vertex %d: %w", i, matrix.ErrDimensionMismatch)
		}
	}

	p.mu.Lock()
	p.vertices = slices.Clone(vs)
	p.dirty = true
	p.mu.Unlock()

	return nil
}

// BlendToOriginal sets every vertex to original·t + from·(1−t).
// The blend is computed as t·O − (t−1)·F over the stacked vertex matrices,
// so t = 1 yields the originals exactly and t = 0 yields from exactly.
// Errors: matrix.ErrDimensionMismatch, matrix.ErrNaNInf (non-finite t).
func (p *Polytope) BlendToOriginal(from []vecn.Vec, t float64) error {
	if len(from) != len(p.original) {
		return fmt.Errorf("Polytope.BlendToOriginal: %d vertices, want %d: %w",
			len(from), len(p.original), matrix.ErrDimensionMismatch)
	}
	f, err := vecn.Stack(from)
	if err != nil {
		return fmt.Errorf("Polytope.BlendToOriginal: %w", err)
	}
	towards, err := matrix.Scale(p.rest, t)
	if err != nil {
		return fmt.Errorf("Polytope.BlendToOriginal: %w", err)
	}
	away, err := matrix.Scale(f, t-1)
	if err != nil {
		return fmt.Errorf("Polytope.BlendToOriginal: %w", err)
	}
	blended, err := matrix.Sub(towards, away)
	if err != nil {
		return fmt.Errorf("Polytope.BlendToOriginal: %w", err)
	}
	next, err := vecn.Unstack(blended)
	if err != nil {
		return fmt.Errorf("Polytope.BlendToOriginal: %w", err)
	}

	p.mu.Lock()
	p.vertices = next
	p.dirty = true
	p.mu.Unlock()

	return nil
}

// AtRest reports whether every vertex is within eps of its original
// position. eps ≤ 0 selects matrix.DefaultEpsilon.
func (p *Polytope) AtRest(eps float64) (bool, error) {
	if eps <= 0 {
		eps = matrix.DefaultEpsilon
	}
	p.mu.RLock()
	cur, err := vecn.Stack(p.vertices)
	p.mu.RUnlock()
	if err != nil {
		return false, fmt.Errorf("Polytope.AtRest: %w", err)
	}
	ok, err := matrix.AllClose(cur, p.rest, matrix.WithEpsilon(eps))
	if err != nil {
		return false, fmt.Errorf("Polytope.AtRest: %w", err)
	}

	return ok, nil
}

// Reset restores the original coordinates exactly.
func (p *Polytope) Reset() {
	p.mu.Lock()
	p.vertices = slices.Clone(p.original)
	p.dirty = true
	p.mu.Unlock()
	p.log.Trace().Msg("polytope reset")
}

// Projected returns the 3D position of every vertex, recomputing the cache
// if a mutation happened since the last call.
func (p *Polytope) Projected() []vecn.Vec3 {
	p.mu.Lock()
	defer p.mu.Unlock()

	return slices.Clone(p.projectLocked())
}

func (p *Polytope) projectLocked() []vecn.Vec3 {
	if !p.dirty && p.projected != nil {
		return p.projected
	}
	if p.projected == nil {
		p.projected = make([]vecn.Vec3, len(p.vertices))
	}
	for i, v := range p.vertices {
		p.projected[i] = vecn.Project(v)
	}
	p.dirty = false

	return p.projected
}

// Position returns the projected position of vertex i.
func (p *Polytope) Position(i int) (vecn.Vec3, error) {
	if err := checkIndex(i, len(p.original)); err != nil {
		return vecn.Vec3{}, fmt.Errorf("Polytope.Position: %w", err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.projectLocked()[i], nil
}
