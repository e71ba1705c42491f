// SPDX-License-Identifier: MIT

package polytope

import "github.com/katalvlaran/dimking/vecn"

// Segment is the projected form of an edge.
type Segment struct {
	Edge   Edge      `json:"edge"`
	From   vecn.Vec3 `json:"from"`
	To     vecn.Vec3 `json:"to"`
	Mid    vecn.Vec3 `json:"mid"`
	Dir    vecn.Vec3 `json:"dir"` // unit, zero when the endpoints coincide
	Length float64   `json:"length"`
}

// FaceMesh is the projected, fan-triangulated form of a face.
// Triangles index into Geometry.Positions. A fan only covers convex faces;
// for star faces (Convex=false) the triangles overlap.
type FaceMesh struct {
	Face      int       `json:"face"`
	Triangles [][3]int  `json:"triangles"`
	Normal    vecn.Vec3 `json:"normal"`
	Convex    bool      `json:"convex"`
}

// Geometry is everything a renderer needs for one frame.
type Geometry struct {
	Positions []vecn.Vec3 `json:"positions"`
	Min       vecn.Vec3   `json:"min"`
	Max       vecn.Vec3   `json:"max"`
	Segments  []Segment   `json:"segments"`
	Faces     []FaceMesh  `json:"faces"`
}

// Geometry derives the frame data from the current projection.
// Complexity: O(V + E + Σ|face|).
func (p *Polytope) Geometry() Geometry {
	p.mu.Lock()
	pos := append([]vecn.Vec3(nil), p.projectLocked()...)
	p.mu.Unlock()

	g := Geometry{Positions: pos}
	if len(pos) > 0 {
		g.Min, g.Max = pos[0], pos[0]
		for _, q := range pos[1:] {
			g.Min = g.Min.Min(q)
			g.Max = g.Max.Max(q)
		}
	}

	g.Segments = make([]Segment, len(p.edges))
	for i, e := range p.edges {
		from, to := pos[e.A], pos[e.B]
		d := to.Sub(from)
		g.Segments[i] = Segment{
			Edge:   e,
			From:   from,
			To:     to,
			Mid:    from.Lerp(to, 0.5),
			Dir:    d.Normalize(),
			Length: d.Norm(),
		}
	}

	g.Faces = make([]FaceMesh, len(p.faces))
	for i, f := range p.faces {
		g.Faces[i] = fanMesh(i, f, pos)
	}

	return g
}

// fanMesh triangulates f around its first cycle vertex.
func fanMesh(idx int, f Face, pos []vecn.Vec3) FaceMesh {
	c := f.Cycle
	m := FaceMesh{Face: idx, Convex: f.Convex, Triangles: make([][3]int, 0, len(c)-2)}
	for k := 1; k+1 < len(c); k++ {
		m.Triangles = append(m.Triangles, [3]int{c[0], c[k], c[k+1]})
	}
	m.Normal = pos[c[1]].Sub(pos[c[0]]).Cross(pos[c[2]].Sub(pos[c[0]])).Normalize()

	return m
}
