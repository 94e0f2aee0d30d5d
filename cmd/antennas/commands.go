package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/antennas/codec"
	"github.com/katalvlaran/antennas/generate"
	"github.com/katalvlaran/antennas/gridgraph"
)

// parseStart converts "X Y FREQUENCY" arguments.
func parseStart(args []string) (Start, error) {
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return Start{}, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return Start{}, fmt.Errorf("y: %w", err)
	}
	if _, err = parseFrequency(args[2]); err != nil {
		return Start{}, err
	}

	return Start{X: x, Y: y, Frequency: args[2]}, nil
}

func (a *app) showCmd() *cobra.Command {
	var render, stats bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print every antenna with its same-frequency neighbors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case render:
				return gridgraph.Render(out, g)
			case stats:
				return writeStats(out, g)
			default:
				return writeGraph(out, g)
			}
		},
	}
	cmd.Flags().BoolVar(&render, "render", false, "print the grid instead of the adjacency listing")
	cmd.Flags().BoolVar(&stats, "stats", false, "print vertex and link counts per frequency")

	return cmd
}

func (a *app) dfsCmd() *cobra.Command {
	var maxDepth int
	cmd := &cobra.Command{
		Use:   "dfs X Y FREQUENCY",
		Short: "Depth-first traversal from an antenna",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := parseStart(args)
			if err != nil {
				return err
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			return reportDFS(cmd.Context(), cmd.OutOrStdout(), g, s, maxDepth)
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", -1, "stop descending below this depth (-1 = unlimited)")

	return cmd
}

func (a *app) bfsCmd() *cobra.Command {
	var maxDepth int
	cmd := &cobra.Command{
		Use:   "bfs X Y FREQUENCY",
		Short: "Breadth-first traversal from an antenna",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := parseStart(args)
			if err != nil {
				return err
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			return reportBFS(cmd.Context(), cmd.OutOrStdout(), g, s, maxDepth)
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop at this depth (0 = unlimited)")

	return cmd
}

func (a *app) pathsCmd() *cobra.Command {
	var q PathQuery
	cmd := &cobra.Command{
		Use:   "paths X1 Y1 X2 Y2 FREQUENCY",
		Short: "List every simple path between two antennas",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseStart([]string{args[0], args[1], args[4]})
			if err != nil {
				return err
			}
			to, err := parseStart([]string{args[2], args[3], args[4]})
			if err != nil {
				return err
			}
			q.From, q.To, q.Frequency = Point{from.X, from.Y}, Point{to.X, to.Y}, args[4]

			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			n, err := reportPaths(cmd.Context(), cmd.OutOrStdout(), g, q)
			if err != nil {
				return err
			}
			a.logger.Debug("paths enumerated", slog.Int("count", n))
			return nil
		},
	}
	cmd.Flags().IntVar(&q.MaxPaths, "max-paths", 0, "stop after this many paths (0 = unlimited)")
	cmd.Flags().IntVar(&q.MaxLength, "max-length", 0, "skip paths with more vertices (0 = unlimited)")

	return cmd
}

func (a *app) intersectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intersect A B",
		Short: "List A antennas touching a B antenna (8 directions)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			_, err = reportIntersections(cmd.OutOrStdout(), g, FrequencyPair{A: args[0], B: args[1]})
			return err
		},
	}
}

func (a *app) saveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save FILE",
		Short: "Write the grid's graph in binary form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			if err = codec.WriteFile(args[0], g, a.codecOptions()...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Antenna graph saved to %s\n", args[0])
			return nil
		},
	}
}

func (a *app) loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load FILE",
		Short: "Read a binary graph and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := codec.ReadFile(args[0], a.codecOptions()...)
			if err != nil {
				return err
			}
			return writeGraph(cmd.OutOrStdout(), g)
		},
	}
}

func (a *app) snapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage named graph snapshots",
	}

	save := &cobra.Command{
		Use:   "save [NAME]",
		Short: "Store the grid's graph; a random name is generated when omitted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "snap-" + uuid.NewString()
			if len(args) == 1 {
				name = args[0]
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			if err = st.Save(cmd.Context(), name, g); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}

	load := &cobra.Command{
		Use:   "load NAME",
		Short: "Print a stored graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			g, err := st.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeGraph(cmd.OutOrStdout(), g)
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List stored snapshot names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			names, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete NAME",
		Short: "Remove a stored snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			return st.Delete(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(save, load, list, del)

	return cmd
}

func (a *app) generateCmd() *cobra.Command {
	var (
		density     float64
		frequencies string
		seed        int64
		output      string
	)
	cmd := &cobra.Command{
		Use:   "generate ROWS COLS",
		Short: "Print a random antenna grid",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("rows: %w", err)
			}
			cols, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("cols: %w", err)
			}
			g, err := generate.Grid(rows, cols, []generate.Option{
				generate.WithSeed(seed),
				generate.WithDensity(density),
				generate.WithFrequencies(frequencies),
			})
			if err != nil {
				return err
			}
			a.logger.Debug("grid generated",
				slog.Int("rows", rows), slog.Int("cols", cols),
				slog.Int("vertices", g.Len()), slog.Int64("seed", seed))

			if output == "" {
				return gridgraph.Render(cmd.OutOrStdout(), g)
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err = gridgraph.Render(f, g); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().Float64Var(&density, "density", generate.DefaultDensity, "probability that a cell holds an antenna")
	cmd.Flags().StringVar(&frequencies, "frequencies", generate.DefaultFrequencies, "labels to draw from")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the grid to this file instead of stdout")

	return cmd
}
