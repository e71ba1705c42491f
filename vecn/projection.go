// SPDX-License-Identifier: MIT

package vecn

import "sync"

const (
	// basisLength scales every projection direction.
	basisLength = 0.2
	// basisGrowth separates the six base directions by length.
	basisGrowth = 1.1
	// basisPeriod is the number of distinct base directions.
	basisPeriod = 6
)

var baseDirections = [basisPeriod]Vec3{
	{2, 2, 1},
	{1, 2, 2},
	{2, 1, 2},
	{-2, 2, 1},
	{-1, 2, 2},
	{-2, 1, 2},
}

var (
	basisMu sync.Mutex
	basis   []Vec3
)

// basisVector computes the direction assigned to dimension i+3.
func basisVector(i int) Vec3 {
	lengthFactor := i/basisPeriod + 1
	if i%(2*basisPeriod) > 2 {
		lengthFactor = -lengthFactor
	}
	mod := i % basisPeriod
	d := baseDirections[mod]
	for k := 0; k < mod; k++ {
		d = d.Scale(basisGrowth)
	}

	return d.Scale(basisLength * float64(lengthFactor))
}

// ProjectionBasis returns the directions for dimensions 3..3+k-1.
// The cache only grows; the returned slice is a copy.
func ProjectionBasis(k int) []Vec3 {
	if k <= 0 {
		return nil
	}
	basisMu.Lock()
	for i := len(basis); i < k; i++ {
		basis = append(basis, basisVector(i))
	}
	out := make([]Vec3, k)
	copy(out, basis[:k])
	basisMu.Unlock()

	return out
}

// Project maps v to 3D. Missing leading components count as 0.
func Project(v Vec) Vec3 {
	p := Vec3{X: v.At(0), Y: v.At(1), Z: v.At(2)}
	if len(v.c) <= 3 {
		return p
	}
	for d, dir := range ProjectionBasis(len(v.c) - 3) {
		p = p.Add(dir.Scale(v.c[d+3]))
	}

	return p
}

// ProjectCoords is Project for a raw coordinate slice.
func ProjectCoords(coords []float64) Vec3 {
	return Project(Vec{c: coords})
}
