// Package intersect reports geometric contacts between antennas of two
// frequencies: pairs that occupy 8-adjacent grid cells.
//
// The check is coordinate-based. Two frequencies never share an edge, so the
// adjacency lists carry no information here; every (A, B) pair is compared.
//
// Complexity: O(|A|·|B|) time, O(P) space for P reported pairs.
package intersect

import "github.com/katalvlaran/antennas/core"

// DirectionOf returns the compass position of v relative to u, or None when
// the cells are identical or more than one step apart on either axis.
func DirectionOf(u, v core.Vertex) Direction {
	dx, dy := v.X-u.X, v.Y-u.Y
	for _, o := range offsets {
		if o.dx == dx && o.dy == dy {
			return o.dir
		}
	}

	return None
}

// Adjacent reports whether u and v occupy 8-adjacent cells (orthogonal or
// diagonal neighbors). A cell is not adjacent to itself.
func Adjacent(u, v core.Vertex) bool {
	return DirectionOf(u, v) != None
}

// Between lists every pair (vertex labeled a, vertex labeled b) in
// 8-adjacent cells, from a's perspective.
//
// Behavior highlights:
//   - Outer loop over a-vertices, inner loop over b-vertices, both in store
//     order (newest first); pairs are reported in that order.
//   - No deduplication: with a == b each contact is reported twice, once per
//     orientation.
//   - A nil graph or an absent frequency yields nil.
func Between(g *core.Graph, a, b core.Frequency) []Pair {
	if g == nil {
		return nil
	}
	as := g.ByFrequency(a)
	if len(as) == 0 {
		return nil
	}
	bs := g.ByFrequency(b)

	var out []Pair
	for _, va := range as {
		for _, vb := range bs {
			if d := DirectionOf(va, vb); d != None {
				out = append(out, Pair{A: va, B: vb, Direction: d})
			}
		}
	}

	return out
}

// Each calls fn for every pair Between would return, stopping early when fn
// returns false. It avoids building the result slice.
func Each(g *core.Graph, a, b core.Frequency, fn func(Pair) bool) {
	if g == nil {
		return
	}
	bs := g.ByFrequency(b)
	for _, va := range g.ByFrequency(a) {
		for _, vb := range bs {
			if d := DirectionOf(va, vb); d != None {
				if !fn(Pair{A: va, B: vb, Direction: d}) {
					return
				}
			}
		}
	}
}
