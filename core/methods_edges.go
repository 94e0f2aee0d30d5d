// File: methods_edges.go
// Role: Edge creation (insertion-time linking, explicit Link) and edge queries.
package core

import "sort"

// addEdge appends one adjacency entry on each endpoint and records the pair
// in the edge set. Callers guarantee the pair is new.
// Complexity: O(1) amortized.
func (g *Graph) addEdge(a, b VertexID) {
	g.adjacency[a] = append(g.adjacency[a], b)
	g.adjacency[b] = append(g.adjacency[b], a)
	g.edgeSet[makeEdgeKey(a, b)] = struct{}{}
}

// HasEdge reports whether a and b are adjacent. The relation is symmetric.
// Unknown IDs yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b VertexID) bool {
	if !g.HasVertex(a) || !g.HasVertex(b) {
		return false
	}
	_, ok := g.edgeSet[makeEdgeKey(a, b)]

	return ok
}

// Edge is an undirected vertex pair, From < To.
type Edge struct {
	From, To VertexID
}

// Edges returns every edge once, ordered by (From, To) ascending.
// Complexity: O(V + E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edgeSet))
	for from, nbrs := range g.adjacency {
		for _, to := range nbrs {
			if to > VertexID(from) {
				out = append(out, Edge{From: VertexID(from), To: to})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edgeSet) }

// Link adds an edge between a and b outside of insertion-time linking.
//
// Implementation:
//   - Stage 1: Validate both IDs (ErrVertexNotFound) and a != b (ErrSelfLoop).
//   - Stage 2: Require equal frequencies (ErrFrequencyMismatch).
//   - Stage 3: Reject an existing edge (ErrEdgeExists).
//   - Stage 4: addEdge.
//
// Behavior highlights:
//   - Keeps edge symmetry and frequency-locality on graphs built WithoutAutoLink.
//   - On auto-linked graphs every same-frequency pair is already linked, so
//     Link can only fail there.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) Link(a, b VertexID) error {
	if !g.HasVertex(a) || !g.HasVertex(b) {
		return ErrVertexNotFound
	}
	if a == b {
		return ErrSelfLoop
	}
	if g.vertices[a].Frequency != g.vertices[b].Frequency {
		return ErrFrequencyMismatch
	}
	if g.HasEdge(a, b) {
		return ErrEdgeExists
	}
	g.addEdge(a, b)

	return nil
}

// AutoLink reports whether AddVertex links same-frequency vertices.
func (g *Graph) AutoLink() bool { return !g.manual }
