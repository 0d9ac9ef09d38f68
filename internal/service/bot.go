package service

import (
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Random returns a uniformly distributed integer in [0, n).
type Random interface {
	IntN(n int) int
}

type BotService interface {
	ChooseCell(board *entity.Board) (int, error)
}

type botService struct {
	random Random
}

func NewBotService(random Random) BotService {
	return &botService{
		random: random,
	}
}

// ChooseCell draws cells uniformly from the whole board until it hits an empty one.
func (that *botService) ChooseCell(board *entity.Board) (int, error) {
	if len(board.EmptyCells()) == 0 {
		return -1, apperror.ErrNoAvailableMoves
	}

	for {
		cell := that.random.IntN(entity.BoardSize)
		if !entity.IsValidCell(cell) {
			return -1, fmt.Errorf("%w: random source returned %d", apperror.ErrInvalidCell, cell)
		}

		if board.IsEmpty(cell) {
			return cell, nil
		}
	}
}

type globalRandom struct{}

// NewRandom returns a Random backed by the auto-seeded math/rand/v2 source.
func NewRandom() Random {
	return globalRandom{}
}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n) //nolint: gosec // it's ok
}
