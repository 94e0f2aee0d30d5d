package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/antennas/core"
)

// errInvalidConfig is wrapped by every Validate failure.
var errInvalidConfig = errors.New("invalid configuration")

// Config is the YAML configuration of the CLI. Zero sections fall back to
// DefaultConfig values.
type Config struct {
	// Grid is the text grid read by every command.
	Grid string `yaml:"grid"`

	// Binary is where run writes and re-reads the codec file. Empty skips
	// that step.
	Binary string `yaml:"binary"`

	Log      LogConfig      `yaml:"log"`
	Codec    CodecConfig    `yaml:"codec"`
	Store    StoreConfig    `yaml:"store"`
	Scenario ScenarioConfig `yaml:"scenario"`
	Watch    WatchConfig    `yaml:"watch"`
}

// LogConfig selects log level and handler.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level"`

	// Format is text, json or auto (text on a terminal, json otherwise).
	Format string `yaml:"format"`
}

// CodecConfig maps to codec options.
type CodecConfig struct {
	// ByteOrder is little or big.
	ByteOrder string `yaml:"byte_order"`

	// ExplicitAdjacency restores edges from the file instead of deriving them.
	ExplicitAdjacency bool `yaml:"explicit_adjacency"`
}

// StoreConfig selects the snapshot backend.
type StoreConfig struct {
	// Kind is file or badger.
	Kind string `yaml:"kind"`

	// Dir is the snapshot directory (file) or database directory (badger).
	Dir string `yaml:"dir"`

	// SyncWrites makes badger commits durable before returning.
	SyncWrites bool `yaml:"sync_writes"`
}

// Point is a grid coordinate in configuration.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Start names a traversal origin.
type Start struct {
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Frequency string `yaml:"frequency"`
}

// PathQuery is one path enumeration of the scenario.
type PathQuery struct {
	From      Point  `yaml:"from"`
	To        Point  `yaml:"to"`
	Frequency string `yaml:"frequency"`
	MaxPaths  int    `yaml:"max_paths"`
	MaxLength int    `yaml:"max_length"`
}

// FrequencyPair is one intersection query.
type FrequencyPair struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
}

// ScenarioConfig lists the queries run executes, in this order.
type ScenarioConfig struct {
	DFS           []Start         `yaml:"dfs"`
	BFS           []Start         `yaml:"bfs"`
	Paths         []PathQuery     `yaml:"paths"`
	Intersections []FrequencyPair `yaml:"intersections"`
}

// WatchConfig configures the watch command.
type WatchConfig struct {
	// Debounce coalesces bursts of file events.
	Debounce time.Duration `yaml:"debounce"`

	// MetricsAddr, if set, serves /metrics, /stats and /healthz.
	MetricsAddr string `yaml:"metrics_addr"`
}

// DefaultConfig returns the built-in scenario.
func DefaultConfig() Config {
	return Config{
		Grid:   "data/antennas.txt",
		Binary: "data/antennas.bin",
		Log:    LogConfig{Level: "info", Format: "auto"},
		Codec:  CodecConfig{ByteOrder: "little"},
		Store:  StoreConfig{Kind: "file", Dir: "data/snapshots"},
		Scenario: ScenarioConfig{
			DFS:           []Start{{X: 1, Y: 1, Frequency: "B"}},
			BFS:           []Start{{X: 1, Y: 1, Frequency: "B"}},
			Paths:         []PathQuery{{From: Point{1, 1}, To: Point{3, 7}, Frequency: "B"}},
			Intersections: []FrequencyPair{{A: "A", B: "B"}},
		},
		Watch: WatchConfig{Debounce: 200 * time.Millisecond},
	}
}

// LoadConfig reads path over DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks enumerated fields and frequencies.
func (c Config) Validate() error {
	if c.Grid == "" {
		return fmt.Errorf("%w: grid is required", errInvalidConfig)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "auto", "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", errInvalidConfig, c.Log.Format)
	}
	switch c.Codec.ByteOrder {
	case "little", "big":
	default:
		return fmt.Errorf("%w: codec.byte_order %q", errInvalidConfig, c.Codec.ByteOrder)
	}
	switch c.Store.Kind {
	case "file", "badger":
	default:
		return fmt.Errorf("%w: store.kind %q", errInvalidConfig, c.Store.Kind)
	}
	if c.Store.Dir == "" {
		return fmt.Errorf("%w: store.dir is required", errInvalidConfig)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("%w: watch.debounce must not be negative", errInvalidConfig)
	}

	var freqs []string
	for _, s := range c.Scenario.DFS {
		freqs = append(freqs, s.Frequency)
	}
	for _, s := range c.Scenario.BFS {
		freqs = append(freqs, s.Frequency)
	}
	for _, q := range c.Scenario.Paths {
		if q.MaxPaths < 0 || q.MaxLength < 0 {
			return fmt.Errorf("%w: path limits must not be negative", errInvalidConfig)
		}
		freqs = append(freqs, q.Frequency)
	}
	for _, p := range c.Scenario.Intersections {
		freqs = append(freqs, p.A, p.B)
	}
	for _, f := range freqs {
		if _, err := parseFrequency(f); err != nil {
			return fmt.Errorf("%w: %w", errInvalidConfig, err)
		}
	}

	return nil
}

// parseLevel maps a level name to slog.Level.
func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", errInvalidConfig, s)
	}

	return l, nil
}

// parseFrequency accepts exactly one byte that can label an antenna.
func parseFrequency(s string) (core.Frequency, error) {
	if len(s) != 1 || !core.Frequency(s[0]).Valid() {
		return 0, fmt.Errorf("frequency must be a single non-reserved character, got %q", s)
	}

	return core.Frequency(s[0]), nil
}
