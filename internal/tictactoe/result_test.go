package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allLines = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func TestEngine_EvaluateResult(t *testing.T) {
	t.Run("Every cell of a completed line reports the win", func(t *testing.T) {
		engine, _, _ := newMockedEngine(t, false)

		for _, line := range allLines {
			for _, mark := range []string{"x", "o"} {
				// Given: a board where only this line is filled with mark
				engine.board = entity.NewBoard()
				for _, cell := range line {
					engine.board[cell] = mark
				}
				expected := entity.WinFor(symbols.Owner(mark))

				for _, cell := range line {
					// When: evaluating from any cell of the line
					result, err := engine.EvaluateResult(cell)

					// Then: the owner of mark wins
					require.NoError(t, err)
					assert.Equal(t, expected, result, "line %v anchored at %d", line, cell)
				}
			}
		}
	})

	t.Run("Ongoing game is undetermined", func(t *testing.T) {
		// Given: no line is complete and cells are free
		engine, _, _ := newMockedEngine(t, false)
		engine.board = entity.Board{"x", "o", "x", "", "o", "", "x", "", ""}

		// When: evaluating after the last move in cell 6
		result, err := engine.EvaluateResult(6)

		// Then: the round goes on
		require.NoError(t, err)
		assert.Equal(t, entity.ResultUndetermined, result)
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: A=0,1,5,6,8 and B=2,3,4,7
		engine, _, _ := newMockedEngine(t, false)
		engine.board = entity.Board{"x", "x", "o", "o", "o", "x", "x", "o", "x"}

		// When: evaluating after the last move in cell 8
		result, err := engine.EvaluateResult(8)

		// Then: it is a draw
		require.NoError(t, err)
		assert.Equal(t, entity.ResultDraw, result)
	})

	t.Run("Win on the last free cell beats the draw", func(t *testing.T) {
		engine, _, _ := newMockedEngine(t, false)
		engine.board = entity.Board{"x", "o", "x", "x", "o", "o", "x", "x", "o"}

		result, err := engine.EvaluateResult(6)

		require.NoError(t, err)
		assert.Equal(t, entity.ResultPlayerAWins, result)
	})

	t.Run("Only lines through the played cell count", func(t *testing.T) {
		// Given: a complete bottom row of o, but x was just played in cell 1
		engine, _, _ := newMockedEngine(t, false)
		engine.board = entity.Board{"", "x", "", "", "", "", "o", "o", "o"}

		// When: evaluating from cell 1
		result, err := engine.EvaluateResult(1)

		// Then: the unrelated row is not considered
		require.NoError(t, err)
		assert.Equal(t, entity.ResultUndetermined, result)
	})

	t.Run("Diagonals are compared with the played mark", func(t *testing.T) {
		// Given: x holds the anti-diagonal and cell 0 is also x
		engine, _, _ := newMockedEngine(t, false)
		engine.board = entity.Board{"x", "", "x", "", "x", "", "x", "", ""}

		// When: evaluating from cell 0, which is not on the anti-diagonal
		result, err := engine.EvaluateResult(0)

		// Then: both diagonals are checked for every anchor
		require.NoError(t, err)
		assert.Equal(t, entity.ResultPlayerAWins, result)
	})

	t.Run("Error on Invalid Cell Index", func(t *testing.T) {
		engine, _, _ := newMockedEngine(t, false)

		_, err := engine.EvaluateResult(9)
		require.ErrorIs(t, err, apperror.ErrInvalidCell)

		_, err = engine.EvaluateResult(-1)
		require.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Error on empty played cell", func(t *testing.T) {
		engine, _, _ := newMockedEngine(t, false)

		_, err := engine.EvaluateResult(4)

		require.ErrorIs(t, err, apperror.ErrCellEmpty)
	})
}
