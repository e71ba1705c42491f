// SPDX-License-Identifier: MIT

package schlafli

import (
	"fmt"

	"github.com/katalvlaran/dimking/matrix"
	"github.com/zyedidia/generic/mapset"
)

// ErrNotClosed signals a structure whose vertex set is not mapped onto
// itself by the symmetry generators of its symbol.
var ErrNotClosed = fmt.Errorf("%w: vertex set not closed under generators", ErrPolytopeGeneration)

// VerifyClosure checks the orbit-closure property of st: every generator of
// st.Symbol maps every vertex onto a vertex of st. Keys are compared with the
// same precision and offset Generate uses (overridable with opts).
func VerifyClosure(st *Structure, opts ...Option) error {
	if st == nil || len(st.Vertices) == 0 {
		return fmt.Errorf("VerifyClosure: empty structure: %w", ErrDegenerate)
	}
	o := gatherOptions(opts...)
	gens, err := Generators(st.Symbol)
	if err != nil {
		return err
	}
	if len(st.Center) != st.Dimension {
		return fmt.Errorf("VerifyClosure: center has %d components: %w", len(st.Center), matrix.ErrDimensionMismatch)
	}

	keys := mapset.New[string]()
	raws := make([][]float64, len(st.Vertices))
	for i := range st.Vertices {
		if len(st.Vertices[i]) != st.Dimension {
			return fmt.Errorf("VerifyClosure: vertex %d: %w", i, matrix.ErrDimensionMismatch)
		}
		raws[i] = st.raw(i)
		keys.Put(vertexKey(raws[i], o))
	}
	if keys.Size() != len(st.Vertices) {
		return fmt.Errorf("VerifyClosure: %d duplicate vertices: %w", len(st.Vertices)-keys.Size(), ErrNotClosed)
	}

	for i, v := range raws {
		for g, gen := range gens {
			img, err := matrix.ApplyHomogeneous(gen, v)
			if err != nil {
				return fmt.Errorf("VerifyClosure: %w", err)
			}
			if !keys.Has(vertexKey(img, o)) {
				return fmt.Errorf("VerifyClosure: generator %d moves vertex %d off the set: %w", g, i, ErrNotClosed)
			}
		}
	}

	return nil
}
