// Package dfs provides depth-first traversal of an antenna graph.
//
// What
//
//   - Locate the start vertex by exact (x, y, frequency) match.
//   - Reset visited state (each run allocates its own).
//   - Visit: mark, emit (pre-order), then recurse into every unvisited
//     neighbor sharing the current frequency, most recently added edge first.
//
// The result reports the visit order, discovery depth and DFS-tree parent
// of every reached vertex. A run reaches exactly the connected component of
// the start vertex, each vertex once.
//
// Usage
//
//	res, err := dfs.DFS(g, 1, 1, 'B')
//	if errors.Is(err, dfs.ErrStartVertexNotFound) {
//	    // no antenna at (1,1) with frequency B
//	}
//	for _, id := range res.Order { ... }
//
// Options
//
//   - WithContext(ctx)    cancellation, checked once per visited vertex.
//   - WithOnVisit(fn)     pre-order hook; an error aborts traversal.
//   - WithMaxDepth(limit) do not descend past depth limit.
package dfs
