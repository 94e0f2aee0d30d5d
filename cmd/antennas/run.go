package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/antennas/codec"
)

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the configured scenario: listing, traversals, paths, intersections, binary round trip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runScenario(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

// runScenario prints one section per configured query. A query naming an
// absent antenna prints an empty section and logs a warning; any other
// failure stops the run.
func (a *app) runScenario(ctx context.Context, w io.Writer) error {
	g, err := a.loadGraph()
	if err != nil {
		return err
	}
	if g.Len() == 0 {
		fmt.Fprintln(w, "Antenna grid is empty")
		return nil
	}

	if err = writeGraph(w, g); err != nil {
		return err
	}
	fmt.Fprintln(w)

	sc := a.cfg.Scenario
	for _, s := range sc.DFS {
		fmt.Fprintf(w, "DFS from vertex (%d, %d) [%s]:\n", s.X, s.Y, s.Frequency)
		if err = a.tolerate(reportDFS(ctx, w, g, s, -1), "dfs", s); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	for _, s := range sc.BFS {
		fmt.Fprintf(w, "BFS from vertex (%d, %d) [%s]:\n", s.X, s.Y, s.Frequency)
		if err = a.tolerate(reportBFS(ctx, w, g, s, 0), "bfs", s); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	for _, q := range sc.Paths {
		fmt.Fprintf(w, "Find all paths from (%d, %d) [%s] to (%d, %d) [%s]:\n",
			q.From.X, q.From.Y, q.Frequency, q.To.X, q.To.Y, q.Frequency)
		n, err := reportPaths(ctx, w, g, q)
		if err = a.tolerate(err, "paths", q); err != nil {
			return err
		}
		a.logger.Debug("paths enumerated", slog.Int("count", n))
		fmt.Fprintln(w)
	}
	for _, p := range sc.Intersections {
		fmt.Fprintf(w, "Intersections between frequency %s and %s:\n", p.A, p.B)
		if _, err = reportIntersections(w, g, p); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	if a.cfg.Binary == "" {
		return nil
	}
	opts := a.codecOptions()
	if err = codec.WriteFile(a.cfg.Binary, g, opts...); err != nil {
		return err
	}
	fmt.Fprintf(w, "Antenna graph saved to %s\n", a.cfg.Binary)
	back, err := codec.ReadFile(a.cfg.Binary, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Antenna graph read from %s\n", a.cfg.Binary)

	return writeGraph(w, back)
}

// tolerate swallows not-found query errors after logging them.
func (a *app) tolerate(err error, query string, args any) error {
	if err != nil && isNotFound(err) {
		a.logger.Warn("query skipped", slog.String("query", query), slog.Any("args", args), slog.String("error", err.Error()))
		return nil
	}

	return err
}
