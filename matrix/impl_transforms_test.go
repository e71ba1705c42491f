package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dimking/matrix"
	"github.com/stretchr/testify/require"
)

// TestPlaneRotationLayout pins the four rotating cells and spot-checks the
// identity elsewhere.
func TestPlaneRotationLayout(t *testing.T) {
	theta := 0.3
	r, err := matrix.PlaneRotation(4, 1, 3, theta)
	require.NoError(t, err)

	cases := []struct {
		i, j int
		want float64
	}{
		{1, 1, math.Cos(theta)},
		{1, 3, math.Sin(theta)},
		{3, 1, -math.Sin(theta)},
		{3, 3, math.Cos(theta)},
		{0, 0, 1},
		{2, 2, 1},
		{0, 1, 0},
	}
	for _, tc := range cases {
		got, err := r.At(tc.i, tc.j)
		require.NoError(t, err)
		require.InDelta(t, tc.want, got, 1e-15, "cell (%d,%d)", tc.i, tc.j)
	}
}

// TestPlaneRotationOrthogonal checks RᵀR is the identity.
func TestPlaneRotationOrthogonal(t *testing.T) {
	r, err := matrix.PlaneRotation(5, 0, 4, 1.234)
	require.NoError(t, err)
	rt, err := matrix.Transpose(r)
	require.NoError(t, err)
	p, err := matrix.Mul(rt, r)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(5)
	require.NoError(t, err)

	ok, err := matrix.AllClose(p, id)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestPlaneRotationErrors rejects equal or out-of-range axes, dimension 1
// and a non-finite angle.
func TestPlaneRotationErrors(t *testing.T) {
	_, err := matrix.PlaneRotation(3, 1, 1, 0.1)
	require.ErrorIs(t, err, matrix.ErrInvalidPlane)
	_, err = matrix.PlaneRotation(3, 0, 3, 0.1)
	require.ErrorIs(t, err, matrix.ErrInvalidPlane)
	_, err = matrix.PlaneRotation(1, 0, 0, 0.1)
	require.ErrorIs(t, err, matrix.ErrInvalidPlane)
	_, err = matrix.PlaneRotation(3, 0, 1, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestHouseholderInvolution checks H flips its own normal and H·H = I.
func TestHouseholderInvolution(t *testing.T) {
	v := []float64{0.6, 0, 0.8}
	h, err := matrix.Householder(v)
	require.NoError(t, err)

	y, err := matrix.MatVec(h, v)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{-0.6, 0, -0.8}, y, 1e-12)

	hh, err := matrix.Mul(h, h)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	ok, err := matrix.AllClose(hh, id)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.Householder(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Householder([]float64{math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestHomogenizeAndApply lifts a quarter turn to homogeneous form and
// applies it to a point.
func TestHomogenizeAndApply(t *testing.T) {
	r, err := matrix.PlaneRotation(2, 0, 1, math.Pi/2)
	require.NoError(t, err)
	h, err := matrix.Homogenize(r)
	require.NoError(t, err)
	require.Equal(t, 3, h.Cols())

	y, err := matrix.ApplyHomogeneous(h, []float64{1, 0})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, -1}, y, 1e-12) // R[1][0] = −sin

	_, err = matrix.Homogenize(h)
	require.ErrorIs(t, err, matrix.ErrNonSquare) // already n×(n+1)
	_, err = matrix.ApplyHomogeneous(r, []float64{1, 0})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.ApplyHomogeneous(h, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestExpandHomogeneous lifts the 1-D reflection x → 1−x into 2-D.
func TestExpandHomogeneous(t *testing.T) {
	base := mustDense(t, 1, 2, -1, 1)

	up, err := matrix.ExpandHomogeneous(base)
	require.NoError(t, err)
	require.Equal(t, "[-1, 0, 1]\n[0, 1, 0]\n", up.String())

	y, err := matrix.ApplyHomogeneous(up, []float64{0.25, 7})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.75, 7}, y, 1e-15)

	twice, err := matrix.ExpandHomogeneous(up)
	require.NoError(t, err)
	require.Equal(t, 3, twice.Rows())
	require.Equal(t, 4, twice.Cols())

	_, err = matrix.ExpandHomogeneous(mustDense(t, 2, 2, 1, 0, 0, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
