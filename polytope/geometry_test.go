package polytope_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGeometryTesseract checks segment lengths and midpoints, the bounding
// box and the two-triangle mesh of every square face.
func TestGeometryTesseract(t *testing.T) {
	p := mustPolytope(t, "4 3 3")
	g := p.Geometry()

	require.Len(t, g.Positions, 16)
	require.Len(t, g.Segments, 32)
	require.Len(t, g.Faces, 24)

	for _, s := range g.Segments {
		require.InDelta(t, s.To.Sub(s.From).Norm(), s.Length, tol)
		require.InDelta(t, (s.From.X+s.To.X)/2, s.Mid.X, tol)
	}
	for _, q := range g.Positions {
		require.LessOrEqual(t, g.Min.X, q.X)
		require.GreaterOrEqual(t, g.Max.Z, q.Z)
	}
	for _, f := range g.Faces {
		require.True(t, f.Convex)
		require.Len(t, f.Triangles, 2) // a square fans into two triangles
	}
}

// TestFaceCyclesFollowEdges checks each face cycle of the 24-cell steps
// along edges and covers the face's vertices.
func TestFaceCyclesFollowEdges(t *testing.T) {
	p := mustPolytope(t, "3 4 3")
	for _, f := range p.Faces() {
		n := len(f.Cycle)
		require.ElementsMatch(t, f.Vertices, f.Cycle)
		for k := 0; k < n; k++ {
			nb, err := p.Neighbors(f.Cycle[k])
			require.NoError(t, err)
			require.True(t, slices.Contains(nb, f.Cycle[(k+1)%n]))
		}
	}
}

// TestStarFacesAreFlagged expects pentagram faces marked non-convex and
// ordinary pentagons convex.
func TestStarFacesAreFlagged(t *testing.T) {
	p := mustPolytope(t, "5/2 5")
	faces := p.Faces()
	require.Len(t, faces, 12)
	for _, f := range faces {
		require.Len(t, f.Cycle, 5)
		require.False(t, f.Convex)
	}

	convex := mustPolytope(t, "5 3")
	for _, f := range convex.Faces() {
		require.True(t, f.Convex)
	}
}

// TestPolygonGeometryHasNoFaces checks a hexagon yields segments only.
func TestPolygonGeometryHasNoFaces(t *testing.T) {
	p := mustPolytope(t, "6")
	g := p.Geometry()
	require.Empty(t, g.Faces)
	require.Len(t, g.Segments, 6)
}
