package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/antennas/bfs"
	"github.com/katalvlaran/antennas/core"
	"github.com/katalvlaran/antennas/dfs"
	"github.com/katalvlaran/antennas/intersect"
	"github.com/katalvlaran/antennas/paths"
)

// writeGraph prints every antenna in store order followed by its neighbors
// in adjacency order:
//
//	Antenna (2, 2) [A] -> (1, 1) (0, 0)
func writeGraph(w io.Writer, g *core.Graph) error {
	var sb strings.Builder
	for _, v := range g.Vertices() {
		nbrs, err := g.NeighborVertices(v.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(&sb, "Antenna (%d, %d) [%c] ->", v.X, v.Y, v.Frequency)
		for _, nb := range nbrs {
			fmt.Fprintf(&sb, " (%d, %d)", nb.X, nb.Y)
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// writeStats prints one summary line per frequency after the totals.
func writeStats(w io.Writer, g *core.Graph) error {
	st := g.Stats()
	if _, err := fmt.Fprintf(w, "%d antennas, %d links, %d frequencies\n",
		st.VertexCount, st.EdgeCount, st.FrequencyCount); err != nil {
		return err
	}
	for _, f := range g.Frequencies() {
		k := st.PerFrequency[f]
		if _, err := fmt.Fprintf(w, "  [%c] %d antennas, %d links\n", f, k, k*(k-1)/2); err != nil {
			return err
		}
	}

	return nil
}

// writeVisit is the shared line format of both traversals.
func writeVisit(w io.Writer, v core.Vertex) error {
	_, err := fmt.Fprintf(w, "Visited: (%d, %d)\n", v.X, v.Y)
	return err
}

// reportDFS streams the depth-first visit order of s.
func reportDFS(ctx context.Context, w io.Writer, g *core.Graph, s Start, maxDepth int) error {
	f, err := parseFrequency(s.Frequency)
	if err != nil {
		return err
	}
	_, err = dfs.DFS(g, s.X, s.Y, f,
		dfs.WithContext(ctx),
		dfs.WithMaxDepth(maxDepth),
		dfs.WithOnVisit(func(v core.Vertex, _ int) error { return writeVisit(w, v) }),
	)

	return err
}

// reportBFS streams the breadth-first visit order of s.
func reportBFS(ctx context.Context, w io.Writer, g *core.Graph, s Start, maxDepth int) error {
	f, err := parseFrequency(s.Frequency)
	if err != nil {
		return err
	}
	_, err = bfs.BFS(g, s.X, s.Y, f,
		bfs.WithContext(ctx),
		bfs.WithMaxDepth(maxDepth),
		bfs.WithOnVisit(func(v core.Vertex, _ int) error { return writeVisit(w, v) }),
	)

	return err
}

// reportPaths streams every simple path of q and returns how many were found.
func reportPaths(ctx context.Context, w io.Writer, g *core.Graph, q PathQuery) (int, error) {
	f, err := parseFrequency(q.Frequency)
	if err != nil {
		return 0, err
	}
	n := 0
	err = paths.Walk(g,
		paths.Point{X: q.From.X, Y: q.From.Y},
		paths.Point{X: q.To.X, Y: q.To.Y},
		f,
		func(p paths.Path) error {
			n++
			_, err := fmt.Fprintf(w, "Path found: %s\n", p)
			return err
		},
		paths.WithContext(ctx),
		paths.WithMaxPaths(q.MaxPaths),
		paths.WithMaxLength(q.MaxLength),
	)

	return n, err
}

// reportIntersections prints every contact between p.A and p.B antennas.
func reportIntersections(w io.Writer, g *core.Graph, p FrequencyPair) (int, error) {
	a, err := parseFrequency(p.A)
	if err != nil {
		return 0, err
	}
	b, err := parseFrequency(p.B)
	if err != nil {
		return 0, err
	}
	n := 0
	var werr error
	intersect.Each(g, a, b, func(pr intersect.Pair) bool {
		n++
		_, werr = fmt.Fprintln(w, pr)
		return werr == nil
	})

	return n, werr
}

// isNotFound reports whether err means a queried antenna does not exist.
func isNotFound(err error) bool {
	return errors.Is(err, dfs.ErrStartVertexNotFound) ||
		errors.Is(err, bfs.ErrStartVertexNotFound) ||
		errors.Is(err, paths.ErrVertexNotFound)
}
