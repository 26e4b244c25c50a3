package game

import (
	"github.com/sirupsen/logrus"
)

// ForceExpand opens every hidden neighbor of a numbered cell once the player
// has placed as many flags around it as it has adjacent mines. Hidden mines
// found this way are exposed and counted; the count is returned so the caller
// can apply its own penalty. Flags that turn out to sit on safe cells are
// taken back.
//
// A cell that isn't numbered yields Refused and an InvalidTransitionError; a
// flag count that doesn't match yields Refused and ErrRefusedExpansion. In
// both cases nothing changes.
func (board *Board) ForceExpand(c Coordinate) (int, error) {
	cell, err := board.cellAt(c)
	if err != nil {
		return Refused, err
	}
	if cell.state != ExposedNumber {
		return Refused, InvalidTransitionError{Coordinate: c, Op: "expand", From: cell.state, Reason: "only numbered cells can be expanded"}
	}

	numMines := board.adjacentMines(c)
	numFlags := board.flaggedNeighbors(c)
	if numFlags != numMines {
		Log.WithFields(logrus.Fields{
			"origin": c,
			"mines":  numMines,
			"flags":  numFlags,
		}).Debug("expansion refused")
		return Refused, ErrRefusedExpansion
	}

	var hidden, wrongFlags []*Cell
	board.eachNeighbor(c, func(neighbor *Cell) {
		switch {
		case neighbor.state == Hidden:
			hidden = append(hidden, neighbor)
		case neighbor.state == Flagged && !neighbor.isMine():
			wrongFlags = append(wrongFlags, neighbor)
		}
	})

	hits, revealed := 0, 0
	for _, neighbor := range hidden {
		// an earlier neighbor's flood may already have reached this one
		if neighbor.state != Hidden {
			continue
		}
		if neighbor.isMine() {
			board.exposeMine(neighbor)
			hits++
		} else {
			revealed += board.flood(neighbor.coord)
		}
	}

	for _, neighbor := range wrongFlags {
		board.unflag(neighbor)
	}

	Log.WithFields(logrus.Fields{
		"origin":     c,
		"hits":       hits,
		"revealed":   revealed,
		"wrongFlags": len(wrongFlags),
	}).Debug("expand")

	return hits, nil
}
