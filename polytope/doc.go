// Package polytope holds the live, rotatable polytope shown to the player.
//
// A Polytope is built once from a generated schlafli.Structure. Its index
// space (vertices, edges, faces) never changes afterwards; only the vertex
// coordinates move, through Rotate, SetVertices, BlendToOriginal and Reset.
//
// Concurrency:
//   - All state sits behind one sync.RWMutex. Each mutator swaps the whole
//     vertex set under the write lock, so readers never observe a partially
//     rotated polytope.
//   - The 3D projection is cached and recomputed lazily after any mutation
//     (a dirty flag, not a comparison of coordinates).
//
// Presentation boundary:
//   - Geometry derives per-edge segments and per-face fan meshes from the
//     projected positions; drawing them is left to the caller.
//   - OnVertexSelected / Select carry vertex clicks to the owner, and
//     BindHandle lets the presentation layer attach its own selectable object
//     to each vertex.
package polytope
