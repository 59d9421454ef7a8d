package domain

import "fmt"

// Coordinate is an integer grid location.
type Coordinate struct {
	X int
	Y int
}

// Origin is the 0,0 coordinate of the grid, the default depot location.
var Origin = Coordinate{}

// DistanceTo returns the Manhattan distance to the other coordinate.
func (c Coordinate) DistanceTo(other Coordinate) int {
	return abs(other.X-c.X) + abs(other.Y-c.Y)
}

// Compare orders coordinates by x, then y. It returns a negative number
// when c sorts before other, zero when equal, positive otherwise.
func (c Coordinate) Compare(other Coordinate) int {
	if c.X != other.X {
		return c.X - other.X
	}
	return c.Y - other.Y
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
