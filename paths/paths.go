// File: paths.go
// Role: backtracking enumeration of simple paths (Walk, FindAll, Count).
package paths

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/antennas/core"
)

// errLimit is the internal signal for MaxPaths exhaustion.
var errLimit = errors.New("paths: limit reached")

// enumerator carries the state of one Walk.
type enumerator struct {
	graph   *core.Graph
	opts    Options
	target  core.VertexID
	marked  []bool
	buf     []core.VertexID
	emitted int
	emit    func(Path) error
}

// Walk calls fn for every simple path from the vertex at from to the vertex
// at to, both labeled f. Paths are produced in depth-first order.
//
// fn receives a fresh Path it may retain. Returning ErrStop ends the walk
// and Walk returns nil; any other error aborts the walk and is returned
// wrapped.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation, ErrVertexNotFound.
//   - ctx.Err() on cancellation.
func Walk(g *core.Graph, from, to Point, f core.Frequency, fn func(Path) error, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}

	origin, err := g.Find(from.X, from.Y, f)
	if err != nil {
		return fmt.Errorf("%w: origin (%d, %d) [%c]", ErrVertexNotFound, from.X, from.Y, f)
	}
	target, err := g.Find(to.X, to.Y, f)
	if err != nil {
		return fmt.Errorf("%w: destination (%d, %d) [%c]", ErrVertexNotFound, to.X, to.Y, f)
	}

	e := &enumerator{
		graph:  g,
		opts:   o,
		target: target,
		marked: make([]bool, g.Len()),
		buf:    make([]core.VertexID, 0, g.Len()),
		emit:   fn,
	}
	err = e.visit(origin)
	switch {
	case err == nil, errors.Is(err, errLimit), errors.Is(err, ErrStop):
		return nil
	default:
		return err
	}
}

// FindAll collects every simple path from from to to (both labeled f).
// An empty result with a nil error means the two vertices exist but are
// not connected.
func FindAll(g *core.Graph, from, to Point, f core.Frequency, opts ...Option) ([]Path, error) {
	var out []Path
	err := Walk(g, from, to, f, func(p Path) error {
		out = append(out, p)
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Count returns the number of simple paths without materializing them.
func Count(g *core.Graph, from, to Point, f core.Frequency, opts ...Option) (int, error) {
	n := 0
	err := Walk(g, from, to, f, func(Path) error {
		n++
		return nil
	}, opts...)

	return n, err
}

// visit extends the current path with id. The mark on id is released by
// the deferred reset whatever way visit returns.
func (e *enumerator) visit(id core.VertexID) (err error) {
	select {
	case <-e.opts.Ctx.Done():
		return e.opts.Ctx.Err()
	default:
	}

	e.marked[id] = true
	e.buf = append(e.buf, id)
	defer func() {
		e.marked[id] = false
		e.buf = e.buf[:len(e.buf)-1]
	}()

	if id == e.target {
		return e.emitPath()
	}
	if e.opts.MaxLength > 0 && len(e.buf) >= e.opts.MaxLength {
		return nil
	}

	cur, err := e.graph.Vertex(id)
	if err != nil {
		return fmt.Errorf("paths: Vertex(%d): %w", id, err)
	}
	nbs, err := e.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("paths: Neighbors(%d): %w", id, err)
	}
	var nb core.Vertex
	for _, nid := range nbs {
		if e.marked[nid] {
			continue
		}
		if nb, err = e.graph.Vertex(nid); err != nil {
			return fmt.Errorf("paths: Vertex(%d): %w", nid, err)
		}
		if nb.Frequency != cur.Frequency {
			continue
		}
		if err = e.visit(nid); err != nil {
			return err
		}
	}

	return nil
}

// emitPath hands a copy of the buffer to the callback and enforces MaxPaths.
func (e *enumerator) emitPath() error {
	p := make(Path, len(e.buf))
	for i, id := range e.buf {
		v, err := e.graph.Vertex(id)
		if err != nil {
			return fmt.Errorf("paths: Vertex(%d): %w", id, err)
		}
		p[i] = v
	}
	if err := e.emit(p); err != nil {
		if errors.Is(err, ErrStop) {
			return err
		}
		return fmt.Errorf("paths: callback: %w", err)
	}
	e.emitted++
	if e.opts.MaxPaths > 0 && e.emitted >= e.opts.MaxPaths {
		return errLimit
	}

	return nil
}
