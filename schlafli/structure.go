// SPDX-License-Identifier: MIT

package schlafli

// Structure is a generated polytope.
//
// Elements[0] holds the edges (vertex index pairs), Elements[1] the 2-faces,
// Elements[k] the (k+1)-dimensional elements. Each element is the sorted list
// of the vertex indices it contains.
//
// Vertices are normalized: raw = vertex·Scale + Center maps a vertex back to
// the coordinates the generators act on.
type Structure struct {
	Symbol    Symbol      `json:"symbol"`
	Dimension int         `json:"dimension"`
	Vertices  [][]float64 `json:"vertices"`
	Elements  [][][]int   `json:"elements"`
	Center    []float64   `json:"center"`
	Scale     float64     `json:"scale"`
}

// Edges returns the vertex index pairs.
func (st *Structure) Edges() [][]int { return st.element(0) }

// Faces returns the 2-faces, or nil for polygons and segments.
func (st *Structure) Faces() [][]int { return st.element(1) }

func (st *Structure) element(k int) [][]int {
	if k >= len(st.Elements) {
		return nil
	}

	return st.Elements[k]
}

// Counts returns [vertices, edges, faces, ...] up to the facets.
func (st *Structure) Counts() []int {
	out := make([]int, 0, len(st.Elements)+1)
	out = append(out, len(st.Vertices))
	for _, e := range st.Elements {
		out = append(out, len(e))
	}

	return out
}

// raw undoes the normalization applied by Generate.
func (st *Structure) raw(i int) []float64 {
	v := st.Vertices[i]
	out := make([]float64, len(v))
	for d, x := range v {
		out[d] = x*st.Scale + st.Center[d]
	}

	return out
}
