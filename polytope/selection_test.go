package polytope_test

import (
	"testing"

	"github.com/katalvlaran/dimking/polytope"
	"github.com/stretchr/testify/require"
)

// TestSelectInvokesCallback checks clicks reach the callback in order and
// stop once it is cleared.
func TestSelectInvokesCallback(t *testing.T) {
	p := mustPolytope(t, "3 3")
	var got []int
	p.OnVertexSelected(func(i int) { got = append(got, i) })

	require.NoError(t, p.Select(2))
	require.NoError(t, p.Select(0))
	require.ErrorIs(t, p.Select(4), polytope.ErrIndexOutOfRange)
	require.Equal(t, []int{2, 0}, got)

	p.OnVertexSelected(nil)
	require.NoError(t, p.Select(1))
	require.Len(t, got, 2) // cleared callback sees nothing
}

// TestHandles binds a display handle to a vertex and looks it up.
func TestHandles(t *testing.T) {
	p := mustPolytope(t, "3 3")
	_, ok := p.Handle(1)
	require.False(t, ok)

	require.NoError(t, p.BindHandle(1, "vertex-1"))
	h, ok := p.Handle(1)
	require.True(t, ok)
	require.Equal(t, "vertex-1", h)

	require.ErrorIs(t, p.BindHandle(-1, "x"), polytope.ErrIndexOutOfRange)
	_, ok = p.Handle(99)
	require.False(t, ok)
}
