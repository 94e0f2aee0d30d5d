// Package bfs provides breadth-first search over the same-frequency
// neighborhoods of an antenna graph, returning visit order, hop distances
// and parent links.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/antennas/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	id    core.VertexID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	head    int
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from the vertex at (x,y)
// with frequency f, applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *core.Graph, x, y int, f core.Frequency, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	start, err := g.Find(x, y, f)
	if err != nil {
		if errors.Is(err, core.ErrVertexNotFound) {
			return nil, fmt.Errorf("%w: (%d, %d) [%c]", ErrStartVertexNotFound, x, y, f)
		}
		return nil, err
	}

	// Prepare walker; the queue grows with the component, no fixed cap.
	n := g.Len()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]core.VertexID, 0, n),
			Depth:  make(map[core.VertexID]int, n),
			Parent: make(map[core.VertexID]core.VertexID, n),
		},
	}

	// Seed queue with start vertex (marked before enqueue)
	if err = w.enqueue(start, 0, start); err != nil {
		return nil, err
	}
	// Main loop
	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent, calls OnEnqueue
// and appends it to the queue. Marking at enqueue time keeps every vertex
// in the queue at most once.
func (w *walker) enqueue(id core.VertexID, d int, parent core.VertexID) error {
	v, err := w.graph.Vertex(id)
	if err != nil {
		return fmt.Errorf("bfs: Vertex(%d): %w", id, err)
	}
	w.visited[id] = true
	w.res.Depth[id] = d
	if id != parent {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})

	return nil
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		cur, err := w.visit(item)
		if err != nil {
			return err
		}
		if err = w.enqueueNeighbors(cur, item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[w.head]
	w.head++

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) (core.Vertex, error) {
	v, err := w.graph.Vertex(item.id)
	if err != nil {
		return v, fmt.Errorf("bfs: Vertex(%d): %w", item.id, err)
	}
	w.res.Order = append(w.res.Order, item.id)
	if err = w.opts.OnVisit(v, item.depth); err != nil {
		return v, fmt.Errorf("bfs: OnVisit error at %v: %w", v, err)
	}

	return v, nil
}

// enqueueNeighbors walks cur's adjacency in order and enqueues each unseen
// neighbor with cur's frequency, honoring MaxDepth.
func (w *walker) enqueueNeighbors(cur core.Vertex, item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	var werr error
	err := w.graph.EachNeighbor(item.id, func(nid core.VertexID) bool {
		if w.visited[nid] {
			return true
		}
		nb, err := w.graph.Vertex(nid)
		if err != nil {
			werr = fmt.Errorf("bfs: Vertex(%d): %w", nid, err)
			return false
		}
		if nb.Frequency != cur.Frequency {
			return true
		}
		werr = w.enqueue(nid, nextDepth, item.id)
		return werr == nil
	})
	if err != nil {
		return fmt.Errorf("bfs: failed to get neighbors of %v: %w", cur, err)
	}

	return werr
}
