// Package schlafli builds regular polytopes from their Schläfli symbols.
//
// A symbol {p, q, r, ...} of length k describes a polytope of dimension k+1.
// Generation is bottom-up: a segment is the 1-dimensional polytope, and each
// further level reflects the previous level's facet through a finite set of
// affine mirrors (the symmetry generators) until the vertex orbit closes.
// The element lists (edges, faces, cells, ...) are lifted the same way through
// the multiplication table recorded while closing the orbit.
//
// Usage:
//
//	sym, _ := schlafli.ParseSymbol("4 3 3")
//	st, err := schlafli.Generate(sym)
//	// st.Vertices: 16 points in R^4, st.Edges(): 32 pairs, st.Faces(): 24 squares
//
// Errors:
//   - Every failure of Generate matches ErrPolytopeGeneration via errors.Is;
//     the more specific cause (ErrMalformedSymbol, ErrHyperbolic,
//     ErrOrbitTooLarge, ErrDegenerate) is joined into the same chain.
//
// Determinism:
//   - No randomness and no map iteration on output paths: the same symbol and
//     options always produce the same vertex order and element order.
package schlafli
