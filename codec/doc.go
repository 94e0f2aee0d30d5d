// Package codec persists an antenna graph in a compact binary layout and
// restores it.
//
// Layout (every integer is a 4-byte signed value in the configured byte
// order, little-endian by default):
//
//	int32 vertexCount
//	vertexCount × { int32 x, int32 y, int8 frequency }
//	vertexCount × { int32 adjCount, adjCount × { int32 x, int32 y } }
//
// Vertices are written in store order (newest first); adjacency block i
// belongs to vertex i of the vertex section and lists neighbor coordinates in
// adjacency order.
//
// Decoding replays insertions oldest-first, so the rebuilt graph has the
// same store order and adjacency order as the one encoded and
// Encode(Decode(b)) reproduces b byte for byte. Edges are derived by the
// frequency rule; the adjacency section is then checked against them
// (ErrAdjacencyMismatch). WithExplicitAdjacency instead builds the graph
// without insertion-time linking and takes edges from the file.
//
// Input is untrusted: negative or oversized counts, short reads, invalid
// frequency bytes and trailing data fail with ErrMalformed before any
// out-of-range access.
package codec
