// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for antennas/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Centralize the structural invariant checks reused by several tests.

package core_test

import (
	"testing"

	"github.com/katalvlaran/antennas/core"
	"github.com/stretchr/testify/require"
)

// Common frequencies used across core tests.
const (
	FreqA core.Frequency = 'A'
	FreqB core.Frequency = 'B'
	FreqX core.Frequency = 'X'
	Freq0 core.Frequency = '0'
)

// cell is a literal (x, y, frequency) insertion.
type cell struct {
	x, y int
	f    core.Frequency
}

// scenarioCells is the grid "A.B\n.A.\nB.A" in row-major reading order.
var scenarioCells = []cell{
	{0, 0, FreqA},
	{0, 2, FreqB},
	{1, 1, FreqA},
	{2, 0, FreqB},
	{2, 2, FreqA},
}

// buildGraph inserts cells in order and fails the test on any error.
func buildGraph(t testing.TB, cells []cell) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithCapacity(len(cells)))
	for _, c := range cells {
		_, err := g.AddVertex(c.x, c.y, c.f)
		require.NoError(t, err, "AddVertex(%d,%d,%c)", c.x, c.y, c.f)
	}

	return g
}

// requireInvariants checks edge symmetry and frequency-locality on every vertex.
func requireInvariants(t *testing.T, g *core.Graph) {
	t.Helper()
	for _, v := range g.Vertices() {
		nbrs, err := g.Neighbors(v.ID)
		require.NoError(t, err)
		for _, n := range nbrs {
			u, err := g.Vertex(n)
			require.NoError(t, err)
			require.Equal(t, v.Frequency, u.Frequency, "edge %v-%v crosses frequencies", v, u)
			require.True(t, g.HasEdge(n, v.ID), "edge %v-%v is not symmetric", v, u)

			back, err := g.Neighbors(n)
			require.NoError(t, err)
			require.Contains(t, back, v.ID, "neighbor list of %v misses %v", u, v)
		}
	}
}
