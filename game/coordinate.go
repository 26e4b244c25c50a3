package game

import "fmt"

type Coordinate struct {
	Row, Col int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// offsets of the 8-neighborhood, row-major
var neighborOffsets = [8]Coordinate{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func (c Coordinate) add(offset Coordinate) Coordinate {
	return Coordinate{Row: c.Row + offset.Row, Col: c.Col + offset.Col}
}
