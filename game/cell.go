package game

import (
	"fmt"
	"strconv"
)

type Cell struct {
	coord    Coordinate
	truth    GroundTruth
	state    CellState
	numMines int

	// busy overlays state until the controller clears it or the cell transitions
	busy bool
}

// CellSnapshot is what a caller may see of a cell.
type CellSnapshot struct {
	State    CellState
	NumMines int
	Symbol   string
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell%v", cell.coord)
}

func (cell *Cell) isMine() bool {
	return cell.truth == Mine
}

func (cell *Cell) visibleState() CellState {
	if cell.busy {
		return Busy
	}
	return cell.state
}

func (cell *Cell) snapshot() CellSnapshot {
	state := cell.visibleState()
	return CellSnapshot{
		State:    state,
		NumMines: cell.numMines,
		Symbol:   Symbol(state, cell.numMines),
	}
}

// Symbol maps a visible state to the character printed for it. numMines is
// only consulted for ExposedNumber.
func Symbol(state CellState, numMines int) string {
	switch state {
	case Hidden:
		return symbolHidden
	case Flagged:
		return symbolFlagged
	case ExposedMine:
		return symbolMine
	case ExposedBlank:
		return symbolBlank
	case ExposedNumber:
		return strconv.Itoa(numMines)
	case Busy:
		return symbolBusy
	default:
		return symbolHidden
	}
}

func (cell *Cell) setState(state CellState) {
	cell.state = state
	cell.busy = false
}

func (cell *Cell) setNumber(numMines int) {
	cell.numMines = numMines
	cell.setState(ExposedNumber)
}
