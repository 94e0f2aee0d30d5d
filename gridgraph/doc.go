// Package gridgraph reads antenna maps written as text grids and turns them
// into a *core.Graph.
//
// Grid format:
//
//	A.B
//	.A.
//	B.A
//
//   - Line index is the row (X), column index is Y; both start at 0.
//   - '.' is an empty cell and advances the column.
//   - Space and tab are ignored and do not advance the column.
//   - A line ends at '\n'; a trailing '\r' is dropped.
//   - Any other byte is an antenna whose frequency is that byte.
//
// Cells are inserted row-major, so insertion order equals reading order and
// the graph's store order is reverse reading order.
//
// Render writes a graph back in the same format.
//
// Errors:
//
//   - ErrLineTooLong: a line exceeds the configured maximum.
//   - ErrInvalidCell: a byte cannot label an antenna (e.g. NUL).
//   - ErrTooLarge: Render extent above MaxRenderCells.
//   - ErrOptionViolation: invalid Option.
package gridgraph
