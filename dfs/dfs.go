// Package dfs implements depth-first search over the same-frequency
// neighborhoods of an antenna graph.
//
// Key features:
//   - DFS(g, x, y, f, opts...): traverse from the vertex at (x,y) labeled f
//   - Neighbors are explored in adjacency order (most recent edge first)
//   - Only unvisited neighbors with the current vertex's frequency are followed
//   - Every run starts from a clean visited state
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of the initial O(V) start lookup.
//   - Memory: O(V) for the visited slice, recursion stack and result maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if no vertex matches the start.
//   - ErrOptionViolation        for invalid options.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/antennas/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph
	opts    DFSOptions
	visited []bool
	res     *DFSResult
}

// DFS performs a depth-first traversal starting from the vertex at (x,y)
// with frequency f and returns the visit order with depths and parents.
func DFS(g *core.Graph, x, y int, f core.Frequency, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 3. Locate the start vertex
	start, err := g.Find(x, y, f)
	if err != nil {
		if errors.Is(err, core.ErrVertexNotFound) {
			return nil, fmt.Errorf("%w: (%d, %d) [%c]", ErrStartVertexNotFound, x, y, f)
		}
		return nil, err
	}

	// 4. Fresh visited state for this run
	n := g.Len()
	walker := &dfsWalker{
		graph:   g,
		opts:    dopts,
		visited: make([]bool, n),
		res: &DFSResult{
			Order:  make([]core.VertexID, 0, n),
			Depth:  make(map[core.VertexID]int, n),
			Parent: make(map[core.VertexID]core.VertexID, n),
		},
	}

	// 5. Traverse
	if err = walker.traverse(start, 0); err != nil {
		return walker.res, err
	}

	return walker.res, nil
}

// traverse marks id visited, emits it, and recurses into unvisited
// same-frequency neighbors in adjacency order.
func (w *dfsWalker) traverse(id core.VertexID, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark and emit
	cur, err := w.graph.Vertex(id)
	if err != nil {
		return fmt.Errorf("dfs: Vertex(%d): %w", id, err)
	}
	w.visited[id] = true
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)

	if w.opts.OnVisit != nil {
		if err = w.opts.OnVisit(cur, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", cur, err)
		}
	}

	// 3. Depth limit: do not descend past MaxDepth
	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		return nil
	}

	// 4. Explore neighbors
	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%d): %w", id, err)
	}
	var nb core.Vertex
	for _, nid := range nbs {
		// visited flags may have changed during an earlier sibling's recursion
		if w.visited[nid] {
			continue
		}
		if nb, err = w.graph.Vertex(nid); err != nil {
			return fmt.Errorf("dfs: Vertex(%d): %w", nid, err)
		}
		// Edges never cross frequencies; the check keeps the walk confined
		// to the start's frequency class regardless.
		if nb.Frequency != cur.Frequency {
			continue
		}
		w.res.Parent[nid] = id
		if err = w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	return nil
}
