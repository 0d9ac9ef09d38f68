package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	BoardSize = 9

	EmptyCell = ""

	// blankMark is how an empty cell is drawn on the console.
	blankMark = " "
)

var (
	Rows = [3][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
	}

	Columns = [3][3]int{
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
	}

	AntiDiagonal = [3]int{2, 4, 6}
	MainDiagonal = [3]int{0, 4, 8}
)

// Board is the 3x3 grid stored row-major, cell i is at row i/3 and column i%3.
type Board [BoardSize]string

func NewBoard() Board {
	return Board{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell}
}

// Reset clears every cell.
func (that *Board) Reset() {
	for i := range that {
		that[i] = EmptyCell
	}
}

// Place puts symbol into cell. An occupied cell is overwritten.
func (that *Board) Place(cell int, symbol string) error {
	if !IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	that[cell] = symbol

	return nil
}

func (that *Board) IsEmpty(cell int) bool {
	return that[cell] == EmptyCell
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// Occupied returns the number of non-empty cells.
func (that *Board) Occupied() int {
	count := 0
	for _, cell := range that {
		if cell != EmptyCell {
			count++
		}
	}

	return count
}

// EmptyCells returns the indexes of all empty cells in ascending order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

// String renders the board as three lines of "[s] [s] [s]".
func (that *Board) String() string {
	var sb strings.Builder

	for _, row := range Rows {
		for col, cell := range row {
			mark := that[cell]
			if mark == EmptyCell {
				mark = blankMark
			}

			if col > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString("[" + mark + "]")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

// RowOf returns the row that contains cell.
func RowOf(cell int) [3]int {
	switch {
	case cell < 3:
		return Rows[0]
	case cell < 6:
		return Rows[1]
	default:
		return Rows[2]
	}
}

// ColumnOf returns the column that contains cell.
func ColumnOf(cell int) [3]int {
	return Columns[cell%3]
}

// FieldHelp is the numbering shown to players before the first round.
func FieldHelp() string {
	var sb strings.Builder

	for _, row := range Rows {
		for col, cell := range row {
			if col > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "[%d]", cell+1)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
