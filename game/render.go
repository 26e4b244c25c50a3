package game

import (
	"strconv"
	"strings"
)

// Render lays the board out for printing: a header row of column indices,
// then one row per board row led by its index. The top-left corner is empty.
func (board *Board) Render() [][]string {
	out := make([][]string, 0, board.rows+1)

	header := make([]string, 0, board.cols+1)
	header = append(header, "")
	for col := 0; col < board.cols; col++ {
		header = append(header, strconv.Itoa(col))
	}
	out = append(out, header)

	for row := 0; row < board.rows; row++ {
		line := make([]string, 0, board.cols+1)
		line = append(line, strconv.Itoa(row))
		for col := 0; col < board.cols; col++ {
			line = append(line, board.cells[row][col].snapshot().Symbol)
		}
		out = append(out, line)
	}

	return out
}

func (board *Board) String() string {
	var b strings.Builder
	for i, line := range board.Render() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Join(line, " "))
	}
	return b.String()
}
