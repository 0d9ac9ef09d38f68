package tictactoe

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

const (
	promptBegin    = "\nDo you want to begin? [y/n]"
	promptAgain    = "\n\nDo you want to play again? [y/n]"
	promptOpponent = "Do you want to play against the computer(1) or against a friend(2)? [1/2]"

	opponentComputer = "1"
	opponentFriend   = "2"
)

// RunSession plays rounds until the player declines another one, then prints the statistics.
// Running out of input ends the session the same way.
func (that *Engine) RunSession(ctx context.Context) (entity.SessionStats, error) {
	fmt.Fprintln(that.out, "Welcome to TicTacToe!")
	fmt.Fprintf(that.out, "Fields are enumerated like this:\n%s\n", entity.FieldHelp())

	err := that.playRounds(ctx)
	switch {
	case errors.Is(err, apperror.ErrInputClosed):
		that.logger.WarnContext(ctx, "input closed, ending session", "rounds", that.stats.Rounds)
	case err != nil:
		return that.stats, fmt.Errorf("session aborted: %w", err)
	}

	fmt.Fprintf(that.out, "\n\n%s", that.stats.String())
	fmt.Fprintln(that.out, "\nGoodbye!")

	return that.stats, nil
}

func (that *Engine) playRounds(ctx context.Context) error {
	humanBegins := false
	if that.cpuMode {
		answer, err := that.input.GetValidInput(ctx, promptBegin, console.YesNoOptions...)
		if err != nil {
			return fmt.Errorf("failed to ask who begins: %w", err)
		}
		humanBegins = answer == console.Yes
	}

	for round := 1; ; round++ {
		fmt.Fprintf(that.out, "\n\nLet's play! This is round %d\n", round)

		that.moves = 0
		// the computer is PlayerA, so the human moves first by skipping its slot
		if round == 1 && that.cpuMode && humanBegins {
			that.moves = 1
		}

		if _, err := that.RunRound(ctx); err != nil {
			return fmt.Errorf("round %d failed: %w", round, err)
		}

		that.InitializeBoard()

		again, err := that.input.GetValidInput(ctx, promptAgain, console.YesNoOptions...)
		if err != nil {
			return fmt.Errorf("failed to ask for another round: %w", err)
		}
		if again == console.No {
			return nil
		}

		opponent, err := that.input.GetValidInput(ctx, promptOpponent, opponentComputer, opponentFriend)
		if err != nil {
			return fmt.Errorf("failed to ask for opponent: %w", err)
		}
		that.cpuMode = opponent == opponentComputer

		that.logger.DebugContext(ctx, "next round", "round", round+1, "cpuMode", that.cpuMode)
	}
}
