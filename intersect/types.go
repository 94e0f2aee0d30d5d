// File: types.go
// Role: Direction and Pair result types.
package intersect

import (
	"fmt"

	"github.com/katalvlaran/antennas/core"
)

// Direction is the compass position of one cell relative to another.
// Rows (X) grow southwards and columns (Y) grow eastwards.
type Direction int

const (
	// None means the cells are not 8-adjacent.
	None Direction = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var directionNames = [...]string{"none", "N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// String returns the short compass name ("N", "SE", ...).
func (d Direction) String() string {
	if d < None || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}

	return directionNames[d]
}

// offsets lists (dx, dy) for each direction, clockwise from North.
var offsets = [...]struct {
	dx, dy int
	dir    Direction
}{
	{-1, 0, North},
	{-1, 1, NorthEast},
	{0, 1, East},
	{1, 1, SouthEast},
	{1, 0, South},
	{1, -1, SouthWest},
	{0, -1, West},
	{-1, -1, NorthWest},
}

// Pair is one intersection: B sits in the cell Direction of A.
type Pair struct {
	A, B      core.Vertex
	Direction Direction
}

// String formats the pair the way the report prints it.
func (p Pair) String() string {
	return fmt.Sprintf("Intersection between %v and %v", p.A, p.B)
}
