// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: sentinel errors, generator configuration and functional options.

package generate

import (
	"errors"
	"math/rand"
)

// Sentinel errors for generators.
var (
	// ErrTooFewCells indicates a non-positive grid dimension or vertex count.
	ErrTooFewCells = errors.New("generate: too few cells")

	// ErrInvalidDensity indicates a density outside [0,1].
	ErrInvalidDensity = errors.New("generate: density out of range")

	// ErrInvalidFrequencies indicates an empty or reserved frequency set.
	ErrInvalidFrequencies = errors.New("generate: invalid frequencies")

	// ErrNeedRandSource indicates a stochastic choice without an RNG.
	ErrNeedRandSource = errors.New("generate: random source required")
)

// Defaults applied by newConfig.
const (
	DefaultDensity     = 0.1
	DefaultFrequencies = "AB"
)

// config aggregates generator knobs. Passed by value to constructors.
type config struct {
	// rng drives every random choice; nil means no randomness.
	rng *rand.Rand

	// density is the per-cell antenna probability of Grid.
	density float64

	// frequencies is the set Grid draws labels from, uniformly.
	frequencies []byte
}

// Option customizes a generator.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		density:     DefaultDensity,
		frequencies: []byte(DefaultFrequencies),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed seeds a private RNG so equal seeds generate equal graphs.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithDensity sets the probability that a Grid cell holds an antenna.
// Validated by the constructor.
func WithDensity(p float64) Option {
	return func(c *config) { c.density = p }
}

// WithFrequencies sets the labels Grid draws from. Repeating a label raises
// its weight. Validated by the constructor.
func WithFrequencies(set string) Option {
	return func(c *config) { c.frequencies = []byte(set) }
}
