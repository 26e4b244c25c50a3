package game

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Board struct {
	rows, cols int // in number of cells
	difficulty Difficulty
	seed       int64
	cells      [][]Cell

	mineCount      int
	minesRemaining int
	flagsRemaining int
	cellsToClear   int
}

type BoardConfig struct {
	Rows, Cols int
	Difficulty Difficulty

	// Seed for mine placement; zero picks one from the clock
	Seed int64
	// Source, when set, is used instead of Seed
	Source rand.Source
}

type Counters struct {
	MineCount      int
	MinesRemaining int
	FlagsRemaining int
	CellsToClear   int
}

func NewBoard(config BoardConfig) (*Board, error) {
	board, err := createBoard(config.Rows, config.Cols)
	if err != nil {
		return nil, err
	}
	board.difficulty = config.Difficulty
	if board.difficulty == 0 {
		board.difficulty = Medium
	}

	source := config.Source
	if source == nil {
		board.seed = config.Seed
		if board.seed == 0 {
			board.seed = time.Now().UnixNano()
		}
		source = rand.NewSource(board.seed)
	}

	board.seedMines(rand.New(source), board.difficulty.MineCount(board.rows, board.cols))
	return board, nil
}

// NewBoardFromLayout builds a board whose mines are given explicitly, one
// string per row: '*' is a mine and '.' is safe.
func NewBoardFromLayout(layout []string) (*Board, error) {
	cols := 0
	if len(layout) > 0 {
		cols = len([]rune(layout[0]))
	}
	board, err := createBoard(len(layout), cols)
	if err != nil {
		return nil, err
	}

	mines := 0
	for row, line := range layout {
		symbols := []rune(line)
		if len(symbols) != cols {
			return nil, LayoutError{Row: row, Col: len(symbols)}
		}
		for col, symbol := range symbols {
			switch symbol {
			case '*':
				board.cells[row][col].truth = Mine
				mines++
			case '.':
			default:
				return nil, LayoutError{Row: row, Col: col, Symbol: symbol}
			}
		}
	}
	board.resetCounters(mines)
	return board, nil
}

func createBoard(rows, cols int) (*Board, error) {
	if rows < 1 || rows > MaxRows || cols < 1 || cols > MaxCols {
		return nil, DimensionError{Rows: rows, Cols: cols}
	}

	board := &Board{
		rows:  rows,
		cols:  cols,
		cells: make([][]Cell, rows),
	}
	for row := 0; row < rows; row++ {
		board.cells[row] = make([]Cell, cols)
		for col := 0; col < cols; col++ {
			cell := &board.cells[row][col]
			cell.coord = Coordinate{Row: row, Col: col}
			cell.truth = Safe
			cell.state = Hidden
		}
	}
	return board, nil
}

func (board *Board) resetCounters(mines int) {
	board.mineCount = mines
	board.minesRemaining = mines
	board.flagsRemaining = mines
	board.cellsToClear = board.rows * board.cols
}

// seedMines draws uniformly random cells until count distinct mines are placed.
func (board *Board) seedMines(r *rand.Rand, count int) {
	board.resetCounters(count)

	draws := 0
	for placed := 0; placed < count; draws++ {
		cell := &board.cells[r.Intn(board.rows)][r.Intn(board.cols)]
		if !cell.isMine() {
			cell.truth = Mine
			placed++
		}
	}

	Log.WithFields(logrus.Fields{
		"rows":       board.rows,
		"cols":       board.cols,
		"difficulty": board.difficulty,
		"seed":       board.seed,
		"mines":      count,
		"draws":      draws,
	}).Debug("seeded board")
}

func (board *Board) Rows() int {
	return board.rows
}

func (board *Board) Cols() int {
	return board.cols
}

func (board *Board) NumCells() int {
	return board.rows * board.cols
}

func (board *Board) Difficulty() Difficulty {
	return board.difficulty
}

// Seed returns the seed mines were placed with, or zero for boards built
// from a layout or an injected source.
func (board *Board) Seed() int64 {
	return board.seed
}

func (board *Board) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < board.rows && c.Col >= 0 && c.Col < board.cols
}

func (board *Board) cellAt(c Coordinate) (*Cell, error) {
	if !board.InBounds(c) {
		return nil, OutOfBoundsError{Coordinate: c, Rows: board.rows, Cols: board.cols}
	}
	return &board.cells[c.Row][c.Col], nil
}

func (board *Board) StateAt(c Coordinate) (CellSnapshot, error) {
	cell, err := board.cellAt(c)
	if err != nil {
		return CellSnapshot{}, err
	}
	return cell.snapshot(), nil
}

func (board *Board) GroundTruthAt(c Coordinate) (GroundTruth, error) {
	cell, err := board.cellAt(c)
	if err != nil {
		return Safe, err
	}
	return cell.truth, nil
}

func (board *Board) Counters() Counters {
	return Counters{
		MineCount:      board.mineCount,
		MinesRemaining: board.minesRemaining,
		FlagsRemaining: board.flagsRemaining,
		CellsToClear:   board.cellsToClear,
	}
}

// IsWon reports whether every unresolved cell left is a mine.
func (board *Board) IsWon() bool {
	return board.cellsToClear == board.minesRemaining
}

type Visitor func(*Cell)

func (board *Board) eachNeighbor(c Coordinate, visit Visitor) {
	for _, offset := range neighborOffsets {
		neighbor := c.add(offset)
		if board.InBounds(neighbor) {
			visit(&board.cells[neighbor.Row][neighbor.Col])
		}
	}
}

func (board *Board) adjacentMines(c Coordinate) int {
	mines := 0
	board.eachNeighbor(c, func(neighbor *Cell) {
		if neighbor.isMine() {
			mines++
		}
	})
	return mines
}

func (board *Board) flaggedNeighbors(c Coordinate) int {
	flags := 0
	board.eachNeighbor(c, func(neighbor *Cell) {
		if neighbor.state == Flagged {
			flags++
		}
	})
	return flags
}

// AdjacentMines counts the mines in the 8-neighborhood of c.
func (board *Board) AdjacentMines(c Coordinate) (int, error) {
	if _, err := board.cellAt(c); err != nil {
		return 0, err
	}
	return board.adjacentMines(c), nil
}

func (board *Board) FlaggedNeighbors(c Coordinate) (int, error) {
	if _, err := board.cellAt(c); err != nil {
		return 0, err
	}
	return board.flaggedNeighbors(c), nil
}
