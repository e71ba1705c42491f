// SPDX-License-Identifier: MIT

package schlafli

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/dimking/matrix"
	"github.com/katalvlaran/dimking/vecn"
)

// level is one rung of the bottom-up construction.
type level struct {
	gens     []*matrix.Dense
	verts    [][]float64
	elements [][][]int
}

// Generate builds the polytope described by sym.
//
// Implementation:
//   - Stage 1: level 1 is the unit segment {0, 1} with the mirror x → 1−x.
//   - Stage 2: for d = 2..n, lift the generators, seed the orbit with the
//     facet's vertices (extended by 0), close it and lift the element lists.
//   - Stage 3: center every axis on (min+max)/2 and divide by the largest
//     projected magnitude.
//
// Errors: every error matches ErrPolytopeGeneration.
// Complexity: O(V·n²·n) for the orbit plus O(E·k·n) per element list.
func Generate(sym Symbol, opts ...Option) (*Structure, error) {
	if err := sym.validate(); err != nil {
		return nil, generationErrorf(fmt.Sprintf("Generate(%s)", sym), err)
	}
	o := gatherOptions(opts...)

	cur := level{
		gens:  []*matrix.Dense{baseGenerator()},
		verts: [][]float64{{0}, {1}},
	}
	var err error
	for k := 1; k <= len(sym); k++ {
		if cur, err = nextLevel(cur, sym.Prefix(k), o); err != nil {
			return nil, generationErrorf(fmt.Sprintf("Generate(%s)", sym), err)
		}
		o.log.Debug().
			Int("dimension", k+1).
			Int("vertices", len(cur.verts)).
			Int("generators", len(cur.gens)).
			Msg("level closed")
	}

	st := &Structure{
		Symbol:    slices.Clone(sym),
		Dimension: sym.Dimension(),
		Vertices:  cur.verts,
		Elements:  cur.elements,
	}
	if err = normalize(st); err != nil {
		return nil, generationErrorf(fmt.Sprintf("Generate(%s)", sym), err)
	}

	return st, nil
}

// GenerateString parses text and generates it; parse failures also match
// ErrPolytopeGeneration.
func GenerateString(text string, opts ...Option) (*Structure, error) {
	sym, err := ParseSymbol(text)
	if err != nil {
		return nil, generationErrorf("GenerateString", err)
	}

	return Generate(sym, opts...)
}

func nextLevel(facet level, sym Symbol, o options) (level, error) {
	gens, err := liftGenerators(facet.gens, sym)
	if err != nil {
		return level{}, err
	}

	verts := make([][]float64, 0, 2*len(facet.verts))
	index := make(map[string]int, 2*len(facet.verts))
	for _, fv := range facet.verts {
		v := append(slices.Clone(fv), 0)
		index[vertexKey(v, o)] = len(verts)
		verts = append(verts, v)
	}

	table, verts, err := closeOrbit(verts, index, gens, o)
	if err != nil {
		return level{}, err
	}

	seeds := make([][][]int, 0, len(facet.elements)+1)
	seeds = append(seeds, facet.elements...)
	whole := make([]int, len(facet.verts))
	for i := range whole {
		whole[i] = i
	}
	seeds = append(seeds, [][]int{whole})

	elements := make([][][]int, len(seeds))
	for k, seed := range seeds {
		elements[k] = closeElements(seed, table, len(gens))
	}

	return level{gens: gens, verts: verts, elements: elements}, nil
}

// closeOrbit applies every generator to every vertex (in insertion order)
// until no new key appears, recording table[vertex][generator].
func closeOrbit(verts [][]float64, index map[string]int, gens []*matrix.Dense, o options) ([][]int, [][]float64, error) {
	table := make([][]int, 0, len(verts))
	for i := 0; i < len(verts); i++ {
		row := make([]int, len(gens))
		for g, gen := range gens {
			img, err := matrix.ApplyHomogeneous(gen, verts[i])
			if err != nil {
				return nil, nil, err
			}
			key := vertexKey(img, o)
			j, seen := index[key]
			if !seen {
				if len(verts) >= o.maxVertices {
					return nil, nil, fmt.Errorf("limit %d: %w", o.maxVertices, ErrOrbitTooLarge)
				}
				j = len(verts)
				index[key] = j
				verts = append(verts, img)
			}
			row[g] = j
		}
		table = append(table, row)
	}

	return table, verts, nil
}

// closeElements closes seed under the generators: each element maps to the
// sorted tuple of its vertices' images.
func closeElements(seed [][]int, table [][]int, genCount int) [][]int {
	elts := make([][]int, 0, len(seed))
	index := make(map[string]struct{}, len(seed))
	for _, e := range seed {
		c := slices.Clone(e)
		index[elementKey(c)] = struct{}{}
		elts = append(elts, c)
	}
	for i := 0; i < len(elts); i++ {
		for g := 0; g < genCount; g++ {
			img := make([]int, len(elts[i]))
			for k, v := range elts[i] {
				img[k] = table[v][g]
			}
			slices.Sort(img)
			key := elementKey(img)
			if _, seen := index[key]; seen {
				continue
			}
			index[key] = struct{}{}
			elts = append(elts, img)
		}
	}

	return elts
}

// vertexKey rounds every coordinate (shifted by the key offset) and joins them.
func vertexKey(v []float64, o options) string {
	scale := math.Pow10(o.keyPrecision)
	var sb strings.Builder
	for i, x := range v {
		if i > 0 {
			sb.WriteByte(' ')
		}
		r := math.Round((x+o.keyOffset)*scale) / scale
		if r == 0 {
			r = 0 // fold −0
		}
		sb.WriteString(strconv.FormatFloat(r, 'f', o.keyPrecision, 64))
	}

	return sb.String()
}

func elementKey(e []int) string {
	var sb strings.Builder
	for i, v := range e {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// normalize centers each axis and scales so the largest projected vertex
// has magnitude 1.
func normalize(st *Structure) error {
	n := st.Dimension
	st.Center = make([]float64, n)
	for d := 0; d < n; d++ {
		lo, hi := st.Vertices[0][d], st.Vertices[0][d]
		for _, v := range st.Vertices {
			lo = math.Min(lo, v[d])
			hi = math.Max(hi, v[d])
		}
		mid := (lo + hi) / 2
		st.Center[d] = mid
		for _, v := range st.Vertices {
			v[d] -= mid
		}
	}

	var mag float64
	for _, v := range st.Vertices {
		mag = math.Max(mag, vecn.ProjectCoords(v).Norm())
	}
	if mag == 0 || math.IsNaN(mag) || math.IsInf(mag, 0) {
		return fmt.Errorf("projected magnitude %g: %w", mag, ErrDegenerate)
	}
	for _, v := range st.Vertices {
		for d := range v {
			v[d] /= mag
		}
	}
	st.Scale = mag

	return nil
}
