// SPDX-License-Identifier: MIT

package polytope

import "fmt"

// OnVertexSelected installs the click callback. fn runs on the goroutine
// that calls Select, outside the polytope lock. A nil fn removes it.
func (p *Polytope) OnVertexSelected(fn func(index int)) {
	p.mu.Lock()
	p.onSelect = fn
	p.mu.Unlock()
}

// Select reports a click on vertex i to the installed callback.
func (p *Polytope) Select(i int) error {
	if err := checkIndex(i, len(p.original)); err != nil {
		return fmt.Errorf("Polytope.Select: %w", err)
	}
	p.mu.RLock()
	fn := p.onSelect
	p.mu.RUnlock()
	if fn != nil {
		fn(i)
	}

	return nil
}

// BindHandle attaches an opaque presentation object to vertex i.
func (p *Polytope) BindHandle(i int, h any) error {
	if err := checkIndex(i, len(p.original)); err != nil {
		return fmt.Errorf("Polytope.BindHandle: %w", err)
	}
	p.mu.Lock()
	p.handles[i] = h
	p.mu.Unlock()

	return nil
}

// Handle returns the object bound to vertex i, if any.
func (p *Polytope) Handle(i int) (any, bool) {
	if i < 0 || i >= len(p.original) {
		return nil, false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	h := p.handles[i]

	return h, h != nil
}
