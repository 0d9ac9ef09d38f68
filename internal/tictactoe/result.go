package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// EvaluateResult judges the board right after cell was played.
// Only the row, the column and both diagonals are compared with the mark in cell.
func (that *Engine) EvaluateResult(cell int) (entity.Result, error) {
	if !entity.IsValidCell(cell) {
		return entity.ResultUndetermined, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.board.IsEmpty(cell) {
		return entity.ResultUndetermined, fmt.Errorf("%w: cell %d", apperror.ErrCellEmpty, cell)
	}

	player := that.symbols.Owner(that.board[cell])

	if that.isUniform(cell, entity.RowOf(cell)) ||
		that.isUniform(cell, entity.ColumnOf(cell)) ||
		that.isUniform(cell, entity.AntiDiagonal) ||
		that.isUniform(cell, entity.MainDiagonal) {
		return entity.WinFor(player), nil
	}

	if !that.board.IsFull() {
		return entity.ResultUndetermined, nil
	}

	return entity.ResultDraw, nil
}

// isUniform reports whether every cell of line holds the mark found in anchor.
func (that *Engine) isUniform(anchor int, line [3]int) bool {
	mark := that.board[anchor]
	for _, cell := range line {
		if that.board[cell] != mark {
			return false
		}
	}

	return true
}
