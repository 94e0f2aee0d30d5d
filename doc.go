// Package antennas is an in-memory engine for frequency-linked antenna
// grids: a text grid of single-character antennas becomes a graph in which
// every pair of antennas sharing a frequency is linked.
//
// Packages:
//
//	core       - the graph store: insertion-time linking, store and adjacency order.
//	gridgraph  - text grid parsing and rendering.
//	dfs, bfs   - traversals from an antenna, with hooks, depth limits and cancellation.
//	paths      - enumeration of every simple path between two antennas.
//	intersect  - cross-frequency contacts among the eight neighboring cells.
//	codec      - the binary graph format (vertex records plus adjacency blocks).
//	snapshot   - named graph snapshots on the filesystem or in badger.
//	generate   - seeded random grids and cliques for fixtures and benchmarks.
//
// The antennas command (cmd/antennas) wires these together: it runs the
// configured scenario, answers single queries, manages snapshots and can
// watch a grid file while exporting Prometheus metrics.
//
// Quick start:
//
//	g, err := gridgraph.ParseFile("antennas.txt")
//	if err != nil { ... }
//	res, err := bfs.BFS(g, 1, 1, 'B')
//	if err != nil { ... }
//	for _, id := range res.Order { ... }
package antennas
