package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrRefusedExpansion is returned when a chord is attempted on a numbered
// cell whose flagged neighbors don't add up to its mine count.
var ErrRefusedExpansion = errors.New("expansion refused: flagged neighbors do not match adjacent mines")

type DimensionError struct {
	Rows, Cols int
}

func (e DimensionError) Error() string {
	switch {
	case e.Rows < 1 || e.Rows > MaxRows:
		return fmt.Sprintf("cannot create a board with %d rows (want 1-%d)", e.Rows, MaxRows)
	case e.Cols < 1 || e.Cols > MaxCols:
		return fmt.Sprintf("cannot create a board with %d columns (want 1-%d)", e.Cols, MaxCols)
	default:
		return fmt.Sprintf("cannot create a %dx%d board", e.Rows, e.Cols)
	}
}

type OutOfBoundsError struct {
	Coordinate
	Rows, Cols int
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("coordinate %v out of range - board (%d, %d)", e.Coordinate, e.Rows, e.Cols)
}

type InvalidTransitionError struct {
	Coordinate
	Op     string
	From   CellState
	Reason string
}

func (e InvalidTransitionError) Error() string {
	msg := fmt.Sprintf("cannot %s %s cell at %v", e.Op, e.From, e.Coordinate)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

type LayoutError struct {
	Row, Col int
	Symbol   rune
}

func (e LayoutError) Error() string {
	if e.Symbol == 0 {
		return fmt.Sprintf("layout row %d has %d columns, want the width of row 0", e.Row, e.Col)
	}
	return fmt.Sprintf("invalid layout symbol %q at (%d, %d)", e.Symbol, e.Row, e.Col)
}
