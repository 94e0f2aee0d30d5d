// Package paths enumerates all simple paths (no repeated vertex) between
// two antennas of the same frequency.
//
// Usage
//
//	ps, err := paths.FindAll(g, paths.Point{X: 1, Y: 1}, paths.Point{X: 3, Y: 7}, 'B')
//	for _, p := range ps {
//	    fmt.Println(p) // (1,1) -> (2,4) -> (3,7)
//	}
//
//	// Streaming, stop after the first hit:
//	err := paths.Walk(g, from, to, 'B', func(p paths.Path) error {
//	    return paths.ErrStop
//	})
//
// Algorithm
//
// A recursive backtracking DFS: the current vertex is marked and appended to
// the path buffer; reaching the destination emits a copy of the buffer;
// otherwise every unmarked same-frequency neighbor is explored in adjacency
// order (most recent edge first). The mark is released when the call
// returns, on every exit path, so a vertex can take part in other branches.
//
// Complexity
//
//   - Time: exponential in the worst case (in a clique every ordering of
//     every subset of intermediate vertices is a distinct path). Bound it
//     with WithMaxPaths, WithMaxLength or a context deadline.
//   - Memory: O(V) for marks and the path buffer, plus the emitted paths.
//
// Options
//
//   - WithContext(ctx)   cancellation, checked once per expanded vertex.
//   - WithMaxPaths(n)    stop after n paths (0 = unlimited).
//   - WithMaxLength(n)   prune paths longer than n vertices (0 = unlimited).
//
// Errors
//
//   - ErrGraphNil, ErrOptionViolation.
//   - ErrVertexNotFound when origin or destination is absent.
//   - Wrapped callback errors; ErrStop is swallowed.
package paths
