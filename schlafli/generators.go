// SPDX-License-Identifier: MIT

package schlafli

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dimking/matrix"
)

// HalfDihedral returns sin and cos of half the dihedral angle of the polytope
// whose symbol is sym, via the recurrence
//
//	ss₀ = 0,  ss_{i+1} = cos²(π/q_i) / (1 − ss_i)
//
// with s = √ss and c = √(1−ss). A final ss within 1e-9 of 1 is snapped to 1
// (flat tilings). ss > 1 or a non-finite ss is reported as ErrHyperbolic.
func HalfDihedral(sym Symbol) (s, c float64, err error) {
	var ss float64
	for _, q := range sym.Values() {
		cq := math.Cos(math.Pi / q)
		ss = cq * cq / (1 - ss)
	}
	if math.Abs(1-ss) < planarTolerance {
		ss = 1
	}
	if math.IsNaN(ss) || math.IsInf(ss, 0) || ss < 0 || ss > 1 {
		return 0, 0, fmt.Errorf("HalfDihedral(%s): ss=%g: %w", sym, ss, ErrHyperbolic)
	}

	return math.Sqrt(ss), math.Sqrt(1 - ss), nil
}

// baseGenerator is the level-1 mirror x → 1 − x.
func baseGenerator() *matrix.Dense {
	g, _ := matrix.NewDenseFrom(1, 2, []float64{-1, 1})

	return g
}

// liftGenerators extends the facet's generators to dimension d = len(sym)+1
// and appends the new mirror built from the half-dihedral angle of sym.
func liftGenerators(facetGens []*matrix.Dense, sym Symbol) ([]*matrix.Dense, error) {
	d := sym.Dimension()
	gens := make([]*matrix.Dense, 0, len(facetGens)+1)
	for _, g := range facetGens {
		up, err := matrix.ExpandHomogeneous(g)
		if err != nil {
			return nil, err
		}
		gens = append(gens, up)
	}

	s, c, err := HalfDihedral(sym)
	if err != nil {
		return nil, err
	}
	v := make([]float64, d)
	v[d-2] = -s
	v[d-1] = c
	h, err := matrix.Householder(v)
	if err != nil {
		return nil, err
	}
	mirror, err := matrix.Homogenize(h)
	if err != nil {
		return nil, err
	}

	return append(gens, mirror), nil
}

// Generators returns the d homogeneous d×(d+1) mirrors generating the
// symmetry group of sym (d = sym.Dimension()).
func Generators(sym Symbol) ([]*matrix.Dense, error) {
	if err := sym.validate(); err != nil {
		return nil, generationErrorf("Generators", err)
	}
	gens := []*matrix.Dense{baseGenerator()}
	var err error
	for k := 1; k <= len(sym); k++ {
		if gens, err = liftGenerators(gens, sym.Prefix(k)); err != nil {
			return nil, generationErrorf("Generators", err)
		}
	}

	return gens, nil
}
