// File: methods_adjacent.go
// Role: Neighborhood APIs in adjacency order (most recently added edge first).
package core

// Neighbors returns the IDs adjacent to id, most recently added edge first.
//
// Implementation:
//   - Stage 1: Validate id (ErrVertexNotFound).
//   - Stage 2: Copy adjacency[id] in reverse into a fresh slice.
//
// Behavior highlights:
//   - The order is the one a head-prepended adjacency list would yield;
//     dfs, bfs and paths visit neighbors in exactly this order.
//   - The caller owns the returned slice.
//
// Complexity:
//   - Time O(d), Space O(d), d = Degree(id).
func (g *Graph) Neighbors(id VertexID) ([]VertexID, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	adj := g.adjacency[id]
	out := make([]VertexID, len(adj))
	for i := range adj {
		out[i] = adj[len(adj)-1-i]
	}

	return out, nil
}

// NeighborVertices is Neighbors resolved to vertex snapshots.
// Complexity: O(d).
func (g *Graph) NeighborVertices(id VertexID) ([]Vertex, error) {
	ids, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	out := make([]Vertex, len(ids))
	for i, nid := range ids {
		out[i] = g.vertices[nid]
	}

	return out, nil
}

// EachNeighbor calls fn for every neighbor of id in adjacency order without
// allocating. Iteration stops when fn returns false.
// Complexity: O(d).
func (g *Graph) EachNeighbor(id VertexID, fn func(VertexID) bool) error {
	if !g.HasVertex(id) {
		return ErrVertexNotFound
	}
	adj := g.adjacency[id]
	for i := len(adj) - 1; i >= 0; i-- {
		if !fn(adj[i]) {
			return nil
		}
	}

	return nil
}
