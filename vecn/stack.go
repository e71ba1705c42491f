// SPDX-License-Identifier: MIT

package vecn

import (
	"fmt"

	"github.com/katalvlaran/dimking/matrix"
)

// Stack packs vs as the rows of a len(vs)×n matrix. Every vector must have
// the same dimension n ≥ 1.
func Stack(vs []Vec) (*matrix.Dense, error) {
	if len(vs) == 0 || len(vs[0].c) == 0 {
		return nil, fmt.Errorf("vecn.Stack: %w", matrix.ErrInvalidDimensions)
	}
	n := len(vs[0].c)
	data := make([]float64, 0, len(vs)*n)
	for i, v := range vs {
		if len(v.c) != n {
			return nil, fmt.Errorf("row %d: %w", i, mismatch("Stack", n, len(v.c)))
		}
		data = append(data, v.c...)
	}
	m, err := matrix.NewDenseFrom(len(vs), n, data)
	if err != nil {
		return nil, fmt.Errorf("vecn.Stack: %w", err)
	}

	return m, nil
}

// Unstack returns every row of m as a Vec.
func Unstack(m matrix.Matrix) ([]Vec, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("vecn.Unstack: %w", err)
	}
	out := make([]Vec, m.Rows())
	if d, ok := m.(*matrix.Dense); ok {
		for i := range out {
			row, err := d.Row(i)
			if err != nil {
				return nil, fmt.Errorf("vecn.Unstack: %w", err)
			}
			out[i] = Vec{c: row}
		}

		return out, nil
	}
	var err error
	for i := range out {
		row := make([]float64, m.Cols())
		for j := range row {
			if row[j], err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("vecn.Unstack: %w", err)
			}
		}
		out[i] = Vec{c: row}
	}

	return out, nil
}
