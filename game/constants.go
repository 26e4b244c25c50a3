package game

import (
	"fmt"
	"strings"
)

type CellState int
type GroundTruth int
type Difficulty int

const (
	Hidden CellState = iota
	Flagged
	ExposedMine
	ExposedBlank
	ExposedNumber
	// Busy is only ever shown by the controller while it waits on a decision
	Busy
)

var cellStateNames = map[CellState]string{
	Hidden:        "hidden",
	Flagged:       "flagged",
	ExposedMine:   "mine",
	ExposedBlank:  "blank",
	ExposedNumber: "discovered",
	Busy:          "in progress",
}

func (state CellState) String() string {
	if name, ok := cellStateNames[state]; ok {
		return name
	}
	return fmt.Sprintf("CellState(%d)", int(state))
}

// IsExposed reports whether the state is terminal for its cell.
func (state CellState) IsExposed() bool {
	return state == ExposedMine || state == ExposedBlank || state == ExposedNumber
}

const (
	Safe GroundTruth = iota
	Mine
)

func (truth GroundTruth) String() string {
	if truth == Mine {
		return "mine"
	}
	return "safe"
}

const (
	Medium Difficulty = iota + 1
	Hard
)

var difficulties = map[string]Difficulty{
	"medium": Medium,
	"hard":   Hard,
}

func ParseDifficulty(name string) (Difficulty, error) {
	if difficulty, ok := difficulties[strings.ToLower(strings.TrimSpace(name))]; ok {
		return difficulty, nil
	}
	return 0, fmt.Errorf("invalid difficulty %q (want medium or hard)", name)
}

func (difficulty Difficulty) String() string {
	for name, d := range difficulties {
		if d == difficulty {
			return name
		}
	}
	return fmt.Sprintf("Difficulty(%d)", int(difficulty))
}

// MineCount is a quarter of the cells on Medium and two fifths on Hard.
func (difficulty Difficulty) MineCount(rows, cols int) int {
	if difficulty == Hard {
		return 2 * rows * cols / 5
	}
	return rows * cols / 4
}

const (
	MaxRows = 30
	MaxCols = 30
)

const (
	symbolHidden  = "-"
	symbolFlagged = "?"
	symbolMine    = "*"
	symbolBlank   = " "
	symbolBusy    = "X"
)

// Refused is returned by ForceExpand in place of a hit count when the chord
// could not be attempted.
const Refused = -1
