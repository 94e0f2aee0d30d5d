package main

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/antennas/codec"
	"github.com/katalvlaran/antennas/core"
	"github.com/katalvlaran/antennas/gridgraph"
	"github.com/katalvlaran/antennas/snapshot"
)

// app carries global flags and the state PersistentPreRunE derives from them.
type app struct {
	configPath  string
	gridPath    string
	logLevel    string
	storeKind   string
	snapshotDir string

	cfg    Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "antennas",
		Short: "Analyze antenna grids as same-frequency graphs",
		Long: `antennas reads a text grid of single-character antennas, links every
pair sharing a frequency, and answers traversal, path and intersection
queries over the resulting graph.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.gridPath, "grid", "", "text grid file (overrides config)")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	pf.StringVar(&a.storeKind, "store", "", "snapshot backend: file or badger (overrides config)")
	pf.StringVar(&a.snapshotDir, "snapshot-dir", "", "snapshot directory (overrides config)")

	root.AddCommand(
		a.showCmd(),
		a.dfsCmd(),
		a.bfsCmd(),
		a.pathsCmd(),
		a.intersectCmd(),
		a.saveCmd(),
		a.loadCmd(),
		a.snapshotCmd(),
		a.runCmd(),
		a.watchCmd(),
		a.generateCmd(),
	)

	return root
}

// setup resolves configuration (defaults, file, flags) and the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := DefaultConfig()
	if a.configPath != "" {
		var err error
		if cfg, err = LoadConfig(a.configPath); err != nil {
			return err
		}
	}
	if a.gridPath != "" {
		cfg.Grid = a.gridPath
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.storeKind != "" {
		cfg.Store.Kind = a.storeKind
	}
	if a.snapshotDir != "" {
		cfg.Store.Dir = a.snapshotDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger

	return nil
}

// loadGraph parses the configured grid.
func (a *app) loadGraph() (*core.Graph, error) {
	start := time.Now()
	g, err := gridgraph.ParseFile(a.cfg.Grid)
	if err != nil {
		return nil, err
	}
	st := g.Stats()
	a.logger.Debug("grid loaded",
		slog.String("path", a.cfg.Grid),
		slog.Int("vertices", st.VertexCount),
		slog.Int("edges", st.EdgeCount),
		slog.Int("frequencies", st.FrequencyCount),
		slog.Duration("elapsed", time.Since(start)),
	)

	return g, nil
}

// codecOptions maps CodecConfig to codec options.
func (a *app) codecOptions() []codec.Option {
	var opts []codec.Option
	if a.cfg.Codec.ByteOrder == "big" {
		opts = append(opts, codec.WithByteOrder(binary.BigEndian))
	}
	if a.cfg.Codec.ExplicitAdjacency {
		opts = append(opts, codec.WithExplicitAdjacency())
	}

	return opts
}

// openStore opens the configured snapshot backend. The caller must Close it.
func (a *app) openStore() (snapshot.Store, error) {
	switch a.cfg.Store.Kind {
	case "badger":
		cfg := snapshot.DefaultConfig()
		cfg.Path = a.cfg.Store.Dir
		cfg.SyncWrites = a.cfg.Store.SyncWrites
		cfg.Logger = a.logger.With(slog.String("component", "badger"))
		cfg.Codec = a.codecOptions()
		return snapshot.OpenBadger(cfg)
	case "file":
		return snapshot.NewFileStore(a.cfg.Store.Dir, a.logger, a.codecOptions()...)
	default:
		return nil, fmt.Errorf("%w: store.kind %q", errInvalidConfig, a.cfg.Store.Kind)
	}
}
