package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Player identifies one of the two seats. In computer mode PlayerA is the computer.
type Player string

const (
	PlayerA Player = "A"
	PlayerB Player = "B"
)

func (that Player) String() string {
	return "Player " + string(that)
}

// Symbols holds the mark each player writes on the board.
type Symbols struct {
	PlayerA string
	PlayerB string
}

func (that Symbols) Of(player Player) (string, error) {
	switch player {
	case PlayerA:
		return that.PlayerA, nil
	case PlayerB:
		return that.PlayerB, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, string(player))
	}
}

// Owner returns the player whose symbol is mark. Anything but PlayerA's symbol belongs to PlayerB.
func (that Symbols) Owner(mark string) Player {
	if mark == that.PlayerA {
		return PlayerA
	}

	return PlayerB
}
