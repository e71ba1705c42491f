package schlafli_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dimking/schlafli"
	"github.com/katalvlaran/dimking/vecn"
	"github.com/stretchr/testify/require"
)

// TestGenerateCounts checks the element counts of polygons, the Platonic
// solids and the regular 4- and 5-polytopes against their known f-vectors.
func TestGenerateCounts(t *testing.T) {
	cases := []struct {
		symbol string
		counts []int
	}{
		{"3", []int{3, 3}},
		{"4", []int{4, 4}},
		{"5/2", []int{5, 5}},
		{"3 3", []int{4, 6, 4}},
		{"4 3", []int{8, 12, 6}},
		{"3 4", []int{6, 12, 8}},
		{"5 3", []int{20, 30, 12}},
		{"3 5", []int{12, 30, 20}},
		{"3 3 3", []int{5, 10, 10, 5}},
		{"4 3 3", []int{16, 32, 24, 8}},
		{"3 3 4", []int{8, 24, 32, 16}},
		{"3 4 3", []int{24, 96, 96, 24}},
		{"3 3 3 3", []int{6, 15, 20, 15, 6}},
	}
	for _, tc := range cases {
		t.Run(tc.symbol, func(t *testing.T) {
			st, err := schlafli.GenerateString(tc.symbol)
			require.NoError(t, err)
			require.Equal(t, tc.counts, st.Counts())
			require.Len(t, st.Edges(), tc.counts[1])
			for _, e := range st.Edges() {
				require.Len(t, e, 2)
			}
		})
	}
}

// TestGenerate600Cell builds the largest default shape; skipped under -short.
func TestGenerate600Cell(t *testing.T) {
	if testing.Short() {
		t.Skip("large orbit")
	}
	st, err := schlafli.GenerateString("3 3 5")
	require.NoError(t, err)
	require.Equal(t, []int{120, 720, 1200, 600}, st.Counts())
}

// TestPolygonHasNoFaces checks that a 2D symbol stops at edges.
func TestPolygonHasNoFaces(t *testing.T) {
	st, err := schlafli.GenerateString("5")
	require.NoError(t, err)
	require.Nil(t, st.Faces())
	require.Equal(t, 2, st.Dimension)
}

// TestGenerateCenteredAndNormalized verifies every axis is centered on the
// origin and the largest projected magnitude is exactly 1.
func TestGenerateCenteredAndNormalized(t *testing.T) {
	for _, s := range schlafli.DefaultShapes[:5] {
		st, err := schlafli.GenerateString(s)
		require.NoError(t, err, s)

		for d := 0; d < st.Dimension; d++ {
			lo, hi := math.Inf(1), math.Inf(-1)
			for _, v := range st.Vertices {
				lo = math.Min(lo, v[d])
				hi = math.Max(hi, v[d])
			}
			require.InDelta(t, 0, lo+hi, 1e-9, "%s axis %d", s, d)
		}

		var mag float64
		for _, v := range st.Vertices {
			mag = math.Max(mag, vecn.ProjectCoords(v).Norm())
		}
		require.InDelta(t, 1, mag, 1e-9, s)
	}
}

// TestTesseractEdgesHaveEqualLength checks that normalization keeps every
// edge of {4,3,3} the same length.
func TestTesseractEdgesHaveEqualLength(t *testing.T) {
	st, err := schlafli.GenerateString("4 3 3")
	require.NoError(t, err)

	length := func(e []int) float64 {
		a, b := vecn.New(st.Vertices[e[0]]...), vecn.New(st.Vertices[e[1]]...)
		d, err := a.Sub(b)
		require.NoError(t, err)

		return d.Norm()
	}
	want := length(st.Edges()[0])
	for _, e := range st.Edges() {
		require.InDelta(t, want, length(e), 1e-9)
	}
}

// TestGenerateDeterministic ensures two runs over the same symbol agree
// exactly, vertex order included.
func TestGenerateDeterministic(t *testing.T) {
	a, err := schlafli.GenerateString("3 4 3")
	require.NoError(t, err)
	b, err := schlafli.GenerateString("3 4 3")
	require.NoError(t, err)
	require.Equal(t, a, b) // deep equality, vertex order included
}

// TestGenerateErrors covers each failure class; every one is also
// ErrPolytopeGeneration.
func TestGenerateErrors(t *testing.T) {
	_, err := schlafli.GenerateString("7 3")
	require.ErrorIs(t, err, schlafli.ErrPolytopeGeneration)
	require.ErrorIs(t, err, schlafli.ErrHyperbolic) // heptagonal tiling of the hyperbolic plane

	_, err = schlafli.GenerateString("4 4", schlafli.WithMaxVertices(64))
	require.ErrorIs(t, err, schlafli.ErrPolytopeGeneration)
	require.ErrorIs(t, err, schlafli.ErrOrbitTooLarge) // the flat square tiling never closes

	_, err = schlafli.GenerateString("3 3", schlafli.WithMaxVertices(3))
	require.ErrorIs(t, err, schlafli.ErrOrbitTooLarge)

	_, err = schlafli.GenerateString("{}")
	require.ErrorIs(t, err, schlafli.ErrPolytopeGeneration)
	require.ErrorIs(t, err, schlafli.ErrMalformedSymbol)

	_, err = schlafli.Generate(schlafli.Symbol{{Num: 1, Den: 1}})
	require.ErrorIs(t, err, schlafli.ErrMalformedSymbol)
}

// TestHalfDihedral checks the recurrence on {4} and its clamp on the flat {6,3}.
func TestHalfDihedral(t *testing.T) {
	s, c, err := schlafli.HalfDihedral(schlafli.MustParseSymbol("4"))
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(0.5), s, 1e-15)
	require.InDelta(t, math.Sqrt(0.5), c, 1e-15)

	// {6,3} is a flat tiling; the recurrence lands within tolerance of 1
	s, c, err = schlafli.HalfDihedral(schlafli.MustParseSymbol("6 3"))
	require.NoError(t, err)
	require.Equal(t, 1.0, s)
	require.Equal(t, 0.0, c)
}

// TestVertexKey verifies offset, rounding and the folding of negative zero.
func TestVertexKey(t *testing.T) {
	require.Equal(t, "0.12300 1.12300", schlafli.VertexKey([]float64{0, 1}))
	// −0.123 rounds to −0 and is folded to 0
	require.Equal(t, "0.00000", schlafli.VertexKey([]float64{-0.123000000001}))
	require.Equal(t, schlafli.VertexKey([]float64{0.5}), schlafli.VertexKey([]float64{0.5 + 1e-12}))
}

// TestOptionPanics checks that nonsense option values panic at construction.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { schlafli.WithKeyPrecision(-1) })
	require.Panics(t, func() { schlafli.WithKeyOffset(math.NaN()) })
	require.Panics(t, func() { schlafli.WithMaxVertices(1) })
}
