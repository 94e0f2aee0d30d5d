// Package bfs provides breadth-first search over an antenna graph.
//
// What
//
//   - Locate the start vertex by exact (x, y, frequency) match.
//   - Reset visited state (each run allocates its own).
//   - Mark the start visited, enqueue it, then repeatedly dequeue, emit, and
//     enqueue every unvisited neighbor with the current frequency in
//     adjacency order (most recently added edge first).
//   - Neighbors are marked visited at enqueue time, so no vertex is queued twice.
//   - The FIFO queue is a growable slice; there is no capacity limit.
//
// Result
//
//   - Order:  dequeue sequence
//   - Depth:  vertex → hop distance from start
//   - Parent: vertex → predecessor in the BFS tree (PathTo rebuilds paths)
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx):    cancellation, checked once per dequeue.
//   - WithMaxDepth(d):     stop exploring beyond depth d (>0); 0 = no limit.
//   - WithOnEnqueue(fn):   hook when a vertex is marked and queued.
//   - WithOnVisit(fn):     hook on emit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if no vertex matches the start.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
