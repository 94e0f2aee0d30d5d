// File: methods_vertices.go
// Role: Vertex insertion (with same-frequency linking) and vertex queries.
//
// Determinism:
//   - Vertices() and ByFrequency() return store order (newest first).
//   - Find() scans store order and returns the first match.
package core

// AddVertex inserts an antenna at (x,y) with frequency f and links it to
// every stored vertex of the same frequency.
//
// Implementation:
//   - Stage 1: Validate frequency (ErrInvalidFrequency) and coordinates (ErrCoordinateRange).
//   - Stage 2: Allocate the next arena slot.
//   - Stage 3: Scan existing vertices in store order; addEdge for each frequency match.
//   - Stage 4: Publish the vertex (it becomes the head of store order).
//
// Behavior highlights:
//   - Linking happens only here; vertices inserted later link back on their own insertion.
//   - Duplicate coordinates are accepted and produce a distinct vertex.
//   - Graphs built WithoutAutoLink skip Stage 3.
//
// Returns:
//   - VertexID: arena index of the new vertex.
//   - error: nil on success; otherwise a sentinel error and no mutation.
//
// Complexity:
//   - Time O(V), Space O(k) where k is the number of same-frequency vertices.
func (g *Graph) AddVertex(x, y int, f Frequency) (VertexID, error) {
	if !f.Valid() {
		return 0, ErrInvalidFrequency
	}
	if x < MinCoordinate || x > MaxCoordinate || y < MinCoordinate || y > MaxCoordinate {
		return 0, ErrCoordinateRange
	}

	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, Vertex{ID: id, X: x, Y: y, Frequency: f})
	g.adjacency = append(g.adjacency, nil)

	if g.manual {
		return id, nil
	}
	// Store order is newest first, so walk the arena backwards.
	for cur := id - 1; cur >= 0; cur-- {
		if g.vertices[cur].Frequency == f {
			g.addEdge(id, cur)
		}
	}

	return id, nil
}

// MustAddVertex is AddVertex that panics on error. Intended for fixtures
// built from literals.
func (g *Graph) MustAddVertex(x, y int, f Frequency) VertexID {
	id, err := g.AddVertex(x, y, f)
	if err != nil {
		panic(err)
	}

	return id
}

// HasVertex reports whether id is a valid arena index.
// Complexity: O(1).
func (g *Graph) HasVertex(id VertexID) bool {
	return id >= 0 && int(id) < len(g.vertices)
}

// Vertex returns the snapshot of vertex id.
// Complexity: O(1).
func (g *Graph) Vertex(id VertexID) (Vertex, error) {
	if !g.HasVertex(id) {
		return Vertex{}, ErrVertexNotFound
	}

	return g.vertices[id], nil
}

// Vertices returns every vertex in store order (newest first).
// The returned slice is a fresh copy.
// Complexity: O(V).
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, len(g.vertices))
	last := len(g.vertices) - 1
	for i := range g.vertices {
		out[i] = g.vertices[last-i]
	}

	return out
}

// Find locates the vertex at (x,y) with frequency f.
//
// With duplicate coordinates the newest matching vertex wins, mirroring a
// head-first scan of the store.
//
// Errors:
//   - ErrVertexNotFound: no vertex matches all three fields.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) Find(x, y int, f Frequency) (VertexID, error) {
	for i := len(g.vertices) - 1; i >= 0; i-- {
		if g.vertices[i].At(x, y, f) {
			return VertexID(i), nil
		}
	}

	return 0, ErrVertexNotFound
}

// ByFrequency returns all vertices labeled f in store order.
// Complexity: O(V).
func (g *Graph) ByFrequency(f Frequency) []Vertex {
	var out []Vertex
	for i := len(g.vertices) - 1; i >= 0; i-- {
		if g.vertices[i].Frequency == f {
			out = append(out, g.vertices[i])
		}
	}

	return out
}

// Degree returns the number of edges incident to id.
// Complexity: O(1).
func (g *Graph) Degree(id VertexID) (int, error) {
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}

	return len(g.adjacency[id]), nil
}
