// SPDX-License-Identifier: MIT

package puzzle

// Snapshot is a serializable view of a Module.
type Snapshot struct {
	ID           int      `json:"id"`
	Session      string   `json:"session"`
	Shape        string   `json:"shape"`
	Dimension    int      `json:"dimension"`
	State        string   `json:"state"`
	Rotations    []string `json:"rotations"`
	Vertices     int      `json:"vertices"`
	Edges        int      `json:"edges"`
	Faces        int      `json:"faces"`
	Palette      []Color  `json:"palette,omitempty"`
	VertexColors []Color  `json:"vertex_colors,omitempty"`
	SolveNumbers []int    `json:"solve_numbers,omitempty"`
	Progress     int      `json:"progress"`
	Entered      []int    `json:"entered,omitempty"`
	Strikes      int      `json:"strikes"`
}

// Snapshot captures the current state.
func (m *Module) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := Snapshot{
		ID:       m.id,
		Session:  m.session,
		State:    m.state.String(),
		Progress: m.progress,
		Strikes:  m.strikes,
	}
	if m.poly != nil {
		s.Shape = m.symbol.String()
		s.Dimension = m.poly.Dimension()
		s.Vertices = m.poly.VertexCount()
		s.Edges = len(m.poly.Edges())
		s.Faces = len(m.poly.Faces())
	}
	for _, p := range m.rotations {
		s.Rotations = append(s.Rotations, p.String())
	}
	if m.state == Solving {
		s.Palette = append(s.Palette, m.palette...)
		s.VertexColors = append(s.VertexColors, m.colors...)
		s.SolveNumbers = append(s.SolveNumbers, m.solve...)
		if m.entry != nil && m.entry.Count() >= 0 {
			s.Entered = append([]int{m.entry.Count()}, m.entry.Values()...)
		}
	}

	return s
}
