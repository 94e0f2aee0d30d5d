// SPDX-License-Identifier: MIT
//
// File: generate.go
// Role: Grid and Complete constructors.

package generate

import (
	"fmt"

	"github.com/katalvlaran/antennas/core"
)

// Grid samples a rows×cols antenna grid.
//
// Implementation:
//   - Stage 1: Validate dimensions, density and frequency set.
//   - Stage 2: Require an RNG when 0 < density < 1, or when cells get filled
//     and more than one label exists.
//   - Stage 3: For x asc, y asc: one Bernoulli trial; on success draw a label
//     and AddVertex(x, y, label).
//
// Graph options (for example core.WithoutAutoLink) are forwarded to
// core.NewGraph; the capacity hint is derived from the expected count.
//
// Complexity:
//   - Time O(rows·cols + V·k) where k is the largest frequency class.
func Grid(rows, cols int, opts []Option, gopts ...core.GraphOption) (*core.Graph, error) {
	cfg := newConfig(opts...)
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Grid: %d×%d: %w", rows, cols, ErrTooFewCells)
	}
	if cfg.density < 0 || cfg.density > 1 {
		return nil, fmt.Errorf("Grid: density=%g: %w", cfg.density, ErrInvalidDensity)
	}
	if err := validateFrequencies(cfg.frequencies); err != nil {
		return nil, fmt.Errorf("Grid: %w", err)
	}
	stochastic := cfg.density > 0 && (cfg.density < 1 || len(cfg.frequencies) > 1)
	if cfg.rng == nil && stochastic {
		return nil, fmt.Errorf("Grid: %w", ErrNeedRandSource)
	}
	if rows > core.MaxCoordinate || cols > core.MaxCoordinate {
		return nil, fmt.Errorf("Grid: %d×%d: %w", rows, cols, core.ErrCoordinateRange)
	}

	hint := int(float64(rows) * float64(cols) * cfg.density)
	g := core.NewGraph(append([]core.GraphOption{core.WithCapacity(min(hint, 1<<16))}, gopts...)...)
	if cfg.density == 0 {
		return g, nil
	}

	for x := 0; x < rows; x++ {
		for y := 0; y < cols; y++ {
			if cfg.density < 1 && cfg.rng.Float64() >= cfg.density {
				continue
			}
			f := cfg.frequencies[0]
			if len(cfg.frequencies) > 1 {
				f = cfg.frequencies[cfg.rng.Intn(len(cfg.frequencies))]
			}
			if _, err := g.AddVertex(x, y, core.Frequency(f)); err != nil {
				return nil, fmt.Errorf("Grid: AddVertex(%d,%d): %w", x, y, err)
			}
		}
	}

	return g, nil
}

// Complete places n antennas of frequency f at (0,0)..(0,n-1). With
// insertion-time linking the result is the clique K_n.
// Complexity: O(n²).
func Complete(n int, f core.Frequency, gopts ...core.GraphOption) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewCells)
	}
	if !f.Valid() {
		return nil, fmt.Errorf("Complete: %w: %w", ErrInvalidFrequencies, core.ErrInvalidFrequency)
	}
	g := core.NewGraph(append([]core.GraphOption{core.WithCapacity(n)}, gopts...)...)
	for y := 0; y < n; y++ {
		if _, err := g.AddVertex(0, y, f); err != nil {
			return nil, fmt.Errorf("Complete: AddVertex(0,%d): %w", y, err)
		}
	}

	return g, nil
}

func validateFrequencies(set []byte) error {
	if len(set) == 0 {
		return ErrInvalidFrequencies
	}
	for _, b := range set {
		if !core.Frequency(b).Valid() {
			return fmt.Errorf("%w: %q: %w", ErrInvalidFrequencies, b, core.ErrInvalidFrequency)
		}
	}

	return nil
}
