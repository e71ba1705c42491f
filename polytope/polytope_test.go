package polytope_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/dimking/matrix"
	"github.com/katalvlaran/dimking/polytope"
	"github.com/katalvlaran/dimking/schlafli"
	"github.com/katalvlaran/dimking/vecn"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func mustPolytope(t *testing.T, symbol string, opts ...polytope.Option) *polytope.Polytope {
	t.Helper()
	st, err := schlafli.GenerateString(symbol)
	require.NoError(t, err)
	p, err := polytope.New(st, opts...)
	require.NoError(t, err)

	return p
}

func requireClose(t *testing.T, want, got []vecn.Vec) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaSlice(t, want[i].Components(), got[i].Components(), tol, "vertex %d", i)
	}
}

// TestNewCounts checks the tesseract's dimension, counts and symbol.
func TestNewCounts(t *testing.T) {
	p := mustPolytope(t, "4 3 3")
	require.Equal(t, 4, p.Dimension())
	require.Equal(t, 16, p.VertexCount())
	require.Len(t, p.Edges(), 32)
	require.Len(t, p.Faces(), 24)
	require.Equal(t, "{4,3,3}", p.Symbol().String())
}

// TestNewRejectsBadStructures corrupts a small valid structure one way at a
// time and expects the matching sentinel.
func TestNewRejectsBadStructures(t *testing.T) {
	base := func() *schlafli.Structure {
		return &schlafli.Structure{
			Vertices: [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
			Elements: [][][]int{{{0, 1}, {1, 2}, {0, 2}}, {{0, 1, 2}}},
		}
	}

	_, err := polytope.New(base())
	require.NoError(t, err)

	_, err = polytope.New(nil)
	require.ErrorIs(t, err, polytope.ErrEmptyStructure)

	st := base()
	st.Elements[0][1] = []int{1, 2, 0} // an edge with three ends
	_, err = polytope.New(st)
	require.ErrorIs(t, err, polytope.ErrStructuralArity)

	st = base()
	st.Elements[1][0] = []int{0, 1}
	_, err = polytope.New(st)
	require.ErrorIs(t, err, polytope.ErrStructuralArity)

	st = base()
	st.Elements[0][0] = []int{0, 9}
	_, err = polytope.New(st)
	require.ErrorIs(t, err, polytope.ErrIndexOutOfRange)

	st = base()
	st.Elements[1][0] = []int{0, 1, -1}
	_, err = polytope.New(st)
	require.ErrorIs(t, err, polytope.ErrIndexOutOfRange)

	st = base()
	st.Vertices[2] = []float64{0, 1}
	_, err = polytope.New(st)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = polytope.NewEdge([]int{1})
	require.ErrorIs(t, err, polytope.ErrStructuralArity)
	_, err = polytope.NewFace([]int{1, 2})
	require.ErrorIs(t, err, polytope.ErrStructuralArity)
}

// TestWithScale checks the display scale multiplies the generated
// coordinates and that nonsense scales panic.
func TestWithScale(t *testing.T) {
	st, err := schlafli.GenerateString("3 3 3")
	require.NoError(t, err)
	p, err := polytope.New(st, polytope.WithScale(2.5))
	require.NoError(t, err)
	require.InDeltaSlice(t, vecn.New(st.Vertices[0]...).Scale(2.5).Components(), p.Vertices()[0].Components(), 0)

	require.Panics(t, func() { polytope.WithScale(0) })
	require.Panics(t, func() { polytope.WithScale(math.NaN()) })
}

// TestRotatePreservesNorm checks plane rotations keep every vertex on its
// sphere.
func TestRotatePreservesNorm(t *testing.T) {
	p := mustPolytope(t, "3 4 3")
	before := p.Vertices()

	for _, pair := range [][2]int{{0, 1}, {3, 0}, {2, 3}} {
		require.NoError(t, p.Rotate(pair[0], pair[1], 0.731))
	}
	after := p.Vertices()
	for i := range before {
		require.InDelta(t, before[i].Norm(), after[i].Norm(), tol)
	}
}

// TestRotateInverse undoes a rotation with its negative angle.
func TestRotateInverse(t *testing.T) {
	p := mustPolytope(t, "4 3 3")
	before := p.Vertices()

	require.NoError(t, p.Rotate(1, 3, 1.1))
	require.False(t, vecn.ValueEquals(before[1], p.Vertices()[1]))
	require.NoError(t, p.Rotate(1, 3, -1.1))
	requireClose(t, before, p.Vertices())
}

// TestFourQuarterTurns turns a full circle in each coordinate plane in four
// steps and expects the shape back at rest.
func TestFourQuarterTurns(t *testing.T) {
	p := mustPolytope(t, "3 3 3")
	before := p.Vertices()
	for pair := 0; pair < 4; pair++ {
		a, b := pair, (pair+1)%4
		for k := 0; k < 4; k++ {
			require.NoError(t, p.Rotate(a, b, math.Pi/2))
		}
		requireClose(t, before, p.Vertices())
		rest, err := p.AtRest(tol)
		require.NoError(t, err)
		require.True(t, rest, "plane (%d,%d) did not close after a full turn", a, b)
	}
}

// TestRotateErrors rejects degenerate or out-of-range planes and a NaN angle.
func TestRotateErrors(t *testing.T) {
	p := mustPolytope(t, "3 3 3")
	require.ErrorIs(t, p.Rotate(1, 1, 0.1), matrix.ErrInvalidPlane)
	require.ErrorIs(t, p.Rotate(0, 4, 0.1), matrix.ErrInvalidPlane)
	require.ErrorIs(t, p.Rotate(0, 1, math.NaN()), matrix.ErrNaNInf)
}

// TestResetIsExact drifts the shape with many rotations, then expects Reset
// to restore the originals bit for bit.
func TestResetIsExact(t *testing.T) {
	p := mustPolytope(t, "3 3 4")
	for i := 0; i < 50; i++ {
		require.NoError(t, p.Rotate(i%4, (i+1)%4, 0.37))
	}
	moved, err := p.AtRest(0)
	require.NoError(t, err)
	require.False(t, moved) // fifty turns leave it displaced

	p.Reset()
	rest, err := p.AtRest(0)
	require.NoError(t, err)
	require.True(t, rest)
	orig := p.Original()
	cur := p.Vertices()
	for i := range orig {
		require.True(t, vecn.ValueEquals(orig[i], cur[i]), "vertex %d", i)
	}
}

// TestBlendAndSet checks the blend endpoints and the length and dimension
// guards of BlendToOriginal and SetVertices.
func TestBlendAndSet(t *testing.T) {
	p := mustPolytope(t, "4 3 3")
	require.NoError(t, p.Rotate(0, 2, 0.8))
	from := p.Vertices()

	require.NoError(t, p.BlendToOriginal(from, 0))
	requireClose(t, from, p.Vertices()) // t = 0 keeps the rotated pose
	require.NoError(t, p.BlendToOriginal(from, 1))
	requireClose(t, p.Original(), p.Vertices())

	require.ErrorIs(t, p.BlendToOriginal(from[:3], 0.5), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, p.BlendToOriginal(from, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, p.SetVertices(from[:3]), matrix.ErrDimensionMismatch)

	bad := p.Vertices()
	bad[0] = vecn.New(1, 2)
	require.ErrorIs(t, p.SetVertices(bad), matrix.ErrDimensionMismatch)

	require.NoError(t, p.SetVertices(from))
	requireClose(t, from, p.Vertices())
}

// TestProjectionCache checks the projection is cached until a rotation
// marks it stale.
func TestProjectionCache(t *testing.T) {
	p := mustPolytope(t, "4 3 3")
	first := p.Projected()
	require.Equal(t, first, p.Projected())

	require.NoError(t, p.Rotate(0, 3, 0.5))
	moved := p.Projected()
	require.NotEqual(t, first, moved) // rotation invalidated the cache

	pos, err := p.Position(5)
	require.NoError(t, err)
	require.Equal(t, moved[5], pos)
	require.Equal(t, vecn.Project(p.Vertices()[5]), pos)

	_, err = p.Position(16)
	require.ErrorIs(t, err, polytope.ErrIndexOutOfRange)
}

// TestConcurrentRotateAndRead rotates on one goroutine while others read,
// and checks no vertex leaves its sphere. Run with -race.
func TestConcurrentRotateAndRead(t *testing.T) {
	p := mustPolytope(t, "3 4 3")
	norms := make([]float64, p.VertexCount())
	for i, v := range p.Vertices() {
		norms[i] = v.Norm()
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = p.Rotate(i%4, (i+2)%4, 0.01)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = p.Geometry()
			for k, v := range p.Vertices() {
				if math.Abs(v.Norm()-norms[k]) > 1e-6 {
					t.Errorf("vertex %d norm drifted", k)

					return
				}
			}
		}
	}()
	wg.Wait()
}
