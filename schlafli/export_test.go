package schlafli

// VertexKey exposes vertexKey with default options to external tests.
func VertexKey(v []float64) string { return vertexKey(v, defaultOptions()) }
