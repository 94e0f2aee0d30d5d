// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only catalog summaries (Len, Frequencies, Stats).

package core

import "sort"

// Len returns the number of stored vertices.
// Complexity: O(1).
func (g *Graph) Len() int { return len(g.vertices) }

// Frequencies returns the distinct frequencies present, sorted ascending.
//
// Complexity:
//   - Time O(V + F log F), Space O(F).
func (g *Graph) Frequencies() []Frequency {
	seen := make(map[Frequency]struct{})
	for _, v := range g.vertices {
		seen[v.Frequency] = struct{}{}
	}
	out := make([]Frequency, 0, len(seen))
	for f := range seen {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Stats produces a snapshot of vertex, edge and per-frequency counts.
//
// Notes:
//   - Under the edge rule a frequency with k vertices contributes exactly
//     k*(k-1)/2 edges, so EdgeCount equals the sum of those terms.
//
// Complexity:
//   - Time O(V), Space O(F).
func (g *Graph) Stats() *GraphStats {
	per := make(map[Frequency]int)
	for _, v := range g.vertices {
		per[v.Frequency]++
	}

	return &GraphStats{
		VertexCount:    len(g.vertices),
		EdgeCount:      len(g.edgeSet),
		FrequencyCount: len(per),
		PerFrequency:   per,
	}
}
