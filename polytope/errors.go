// SPDX-License-Identifier: MIT

package polytope

import "errors"

var (
	// ErrStructuralArity signals an edge without exactly two vertex indices
	// or a face with fewer than three.
	ErrStructuralArity = errors.New("polytope: element has wrong number of vertices")

	// ErrIndexOutOfRange signals a vertex index outside [0, VertexCount).
	ErrIndexOutOfRange = errors.New("polytope: vertex index out of range")

	// ErrEmptyStructure signals a nil structure or one without vertices.
	ErrEmptyStructure = errors.New("polytope: structure has no vertices")
)
