package game

import (
	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gridsweep/util/collections"
)

// Reveal exposes a safe cell and, when it has no adjacent mines, floods
// outward through every hidden neighbor. Mines and already exposed cells are
// left alone; scoring a mine is up to the caller (see ExposeMine). It returns
// the number of cells exposed.
func (board *Board) Reveal(c Coordinate) (int, error) {
	cell, err := board.cellAt(c)
	if err != nil {
		return 0, err
	}
	if cell.isMine() || cell.state.IsExposed() {
		return 0, nil
	}
	if cell.state == Flagged {
		return 0, InvalidTransitionError{Coordinate: c, Op: "reveal", From: Flagged, Reason: "unflag it first"}
	}

	revealed := board.flood(c)

	Log.WithFields(logrus.Fields{
		"origin":       c,
		"revealed":     revealed,
		"cellsToClear": board.cellsToClear,
	}).Debug("reveal")

	return revealed, nil
}

// flood runs off an explicit work-list; each coordinate is queued at most
// once and leaves Hidden as soon as it is visited.
func (board *Board) flood(origin Coordinate) int {
	var pending deque.Deque
	queued := collections.Set[Coordinate]{}

	enqueue := func(c Coordinate) {
		if queued.AddNew(c) {
			pending.PushBack(c)
		}
	}

	enqueue(origin)
	revealed := 0

	for pending.Len() > 0 {
		c := pending.PopFront().(Coordinate)
		cell := &board.cells[c.Row][c.Col]
		if cell.isMine() || cell.state.IsExposed() || cell.state == Flagged {
			continue
		}

		board.cellsToClear--
		revealed++

		numMines := board.adjacentMines(c)
		if numMines > 0 {
			cell.setNumber(numMines)
			continue
		}

		cell.setState(ExposedBlank)
		board.eachNeighbor(c, func(neighbor *Cell) {
			if neighbor.state == Hidden {
				enqueue(neighbor.coord)
			}
		})
	}

	return revealed
}
