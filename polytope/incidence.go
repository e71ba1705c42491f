// SPDX-License-Identifier: MIT

package polytope

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/dimking/matrix"
)

// incidenceMark is placed at both endpoint rows of an edge column.
const incidenceMark = 1.0

// Neighbors returns the vertices sharing an edge with i, ascending.
func (p *Polytope) Neighbors(i int) ([]int, error) {
	if err := checkIndex(i, len(p.adj)); err != nil {
		return nil, fmt.Errorf("Polytope.Neighbors: %w", err)
	}

	return slices.Clone(p.adj[i]), nil
}

// Degree returns the number of edges at vertex i.
func (p *Polytope) Degree(i int) (int, error) {
	if err := checkIndex(i, len(p.adj)); err != nil {
		return 0, fmt.Errorf("Polytope.Degree: %w", err)
	}

	return len(p.adj[i]), nil
}

// IncidenceMatrix returns the |V|×|E| vertex-edge incidence matrix: column k
// holds +1 at the two endpoint rows of edge k. Columns follow Edges() order.
// Errors: matrix.ErrInvalidDimensions for a polytope without edges.
func (p *Polytope) IncidenceMatrix() (*matrix.Dense, error) {
	m, err := matrix.NewDense(len(p.original), len(p.edges))
	if err != nil {
		return nil, fmt.Errorf("Polytope.IncidenceMatrix: %w", err)
	}
	for k, e := range p.edges {
		if err = m.Set(e.A, k, incidenceMark); err != nil {
			return nil, fmt.Errorf("Polytope.IncidenceMatrix: %w", err)
		}
		if err = m.Set(e.B, k, incidenceMark); err != nil {
			return nil, fmt.Errorf("Polytope.IncidenceMatrix: %w", err)
		}
	}

	return m, nil
}

// AdjacencyMatrix returns the symmetric |V|×|V| 0/1 adjacency matrix.
func (p *Polytope) AdjacencyMatrix() (*matrix.Dense, error) {
	n := len(p.original)
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Polytope.AdjacencyMatrix: %w", err)
	}
	for _, e := range p.edges {
		_ = m.Set(e.A, e.B, 1)
		_ = m.Set(e.B, e.A, 1)
	}

	return m, nil
}
