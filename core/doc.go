// Package core provides the in-memory antenna graph: an arena of vertices
// (grid coordinates plus a single-character frequency) in which every pair
// of vertices sharing a frequency is linked at insertion time.
//
// The Graph G = (V,E) follows one edge rule:
//
//   - Inserting w links w to every vertex already stored with w's frequency.
//   - Edges are undirected and stored on both endpoints (symmetric).
//   - Edges never cross frequencies (frequency-locality).
//   - There is no retroactive linking and no vertex removal.
//
// Graphs built WithoutAutoLink skip insertion-time linking; edges are then
// added one by one with Link, which still refuses cross-frequency pairs.
//
// Storage model:
//
//	vertices []Vertex            // arena, index == VertexID (insertion order)
//	adjacency [][]VertexID       // per-vertex edge list, append order
//	edgeSet   map[edgeKey]struct{}
//
// Iteration orders mirror a prepend-on-insert list:
//
//   - Vertices() yields the newest vertex first ("store order").
//   - Neighbors(id) yields the most recently added edge first ("adjacency order").
//
// Both orders are deterministic for a given insertion sequence, and the
// traversal packages (dfs, bfs, paths) rely on them.
//
// Duplicate coordinates:
//
//	The store does not enforce uniqueness of (x,y). Two vertices may share a
//	cell (with equal or different frequencies); Find returns the newest match.
//
// Concurrency:
//
//	A Graph is not safe for concurrent mutation. All methods assume a single
//	caller; concurrent read-only use after construction is safe because no
//	method mutates shared state on read.
//
// Errors:
//
//	ErrInvalidFrequency  - frequency byte is reserved grid syntax.
//	ErrCoordinateRange   - coordinate does not fit the persisted 32-bit layout.
//	ErrVertexNotFound    - lookup by ID or (x,y,frequency) failed.
//	ErrFrequencyMismatch - Link across frequencies.
//	ErrEdgeExists        - Link of an already linked pair.
//	ErrSelfLoop          - Link of a vertex to itself.
package core
