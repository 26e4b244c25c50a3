package game

// Flag marks a hidden cell, spending one flag. A flagged cell counts as
// resolved until it is unflagged.
func (board *Board) Flag(c Coordinate) error {
	cell, err := board.cellAt(c)
	if err != nil {
		return err
	}
	if cell.state != Hidden {
		return InvalidTransitionError{Coordinate: c, Op: "flag", From: cell.state}
	}
	if board.flagsRemaining <= 0 {
		return InvalidTransitionError{Coordinate: c, Op: "flag", From: cell.state, Reason: "no flags remaining"}
	}

	cell.setState(Flagged)
	board.flagsRemaining--
	board.cellsToClear--
	if cell.isMine() {
		board.minesRemaining--
	}
	return nil
}

func (board *Board) Unflag(c Coordinate) error {
	cell, err := board.cellAt(c)
	if err != nil {
		return err
	}
	if cell.state != Flagged {
		return InvalidTransitionError{Coordinate: c, Op: "unflag", From: cell.state}
	}

	board.unflag(cell)
	return nil
}

func (board *Board) unflag(cell *Cell) {
	cell.setState(Hidden)
	board.flagsRemaining++
	board.cellsToClear++
	if cell.isMine() {
		board.minesRemaining++
	}
}

// ExposeMine is the transition a caller makes after deciding a hidden cell
// it checked is a mine.
func (board *Board) ExposeMine(c Coordinate) error {
	cell, err := board.cellAt(c)
	if err != nil {
		return err
	}
	if cell.state != Hidden {
		return InvalidTransitionError{Coordinate: c, Op: "expose", From: cell.state}
	}
	if !cell.isMine() {
		return InvalidTransitionError{Coordinate: c, Op: "expose", From: cell.state, Reason: "cell is safe, reveal it instead"}
	}

	board.exposeMine(cell)
	return nil
}

func (board *Board) exposeMine(cell *Cell) {
	cell.setState(ExposedMine)
	board.minesRemaining--
	board.cellsToClear--
}

// MarkBusy shows the cell as in progress without touching its state.
func (board *Board) MarkBusy(c Coordinate) error {
	cell, err := board.cellAt(c)
	if err != nil {
		return err
	}
	if cell.state == ExposedMine || cell.state == ExposedBlank {
		return InvalidTransitionError{Coordinate: c, Op: "mark busy", From: cell.state, Reason: "cell is already cleared"}
	}
	cell.busy = true
	return nil
}

// ClearBusy drops the in-progress marker. Cells that are not busy are left
// as they are.
func (board *Board) ClearBusy(c Coordinate) error {
	cell, err := board.cellAt(c)
	if err != nil {
		return err
	}
	cell.busy = false
	return nil
}
