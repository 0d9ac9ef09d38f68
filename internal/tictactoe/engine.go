package tictactoe

//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

const promptField = "Enter field number: "

// InputSource asks the player until one of options is typed.
type InputSource interface {
	GetValidInput(ctx context.Context, prompt string, options ...string) (string, error)
}

// RandomChoice picks an empty cell for the computer.
type RandomChoice interface {
	ChooseCell(board *entity.Board) (int, error)
}

// Engine owns the board and the statistics of one session.
type Engine struct {
	logger *slog.Logger
	input  InputSource
	bot    RandomChoice
	out    io.Writer

	board   entity.Board
	symbols entity.Symbols
	cpuMode bool
	result  entity.Result
	stats   entity.SessionStats

	// moves decides whose turn it is: even for PlayerA, odd for PlayerB.
	moves int
}

func NewEngine(
	logger *slog.Logger,
	input InputSource,
	bot RandomChoice,
	out io.Writer,
	symbols entity.Symbols,
	cpuMode bool,
) *Engine {
	engine := &Engine{
		logger:  logger.With("component", "engine"),
		input:   input,
		bot:     bot,
		out:     out,
		symbols: symbols,
		cpuMode: cpuMode,
		result:  entity.ResultUndetermined,
	}
	engine.InitializeBoard()

	return engine
}

func (that *Engine) InitializeBoard() {
	that.board.Reset()
}

func (that *Engine) Board() entity.Board {
	return that.board
}

func (that *Engine) Stats() entity.SessionStats {
	return that.stats
}

func (that *Engine) CPUMode() bool {
	return that.cpuMode
}

// SelectMove gets a cell from the computer or from the console and marks it for player.
// A human may pick an occupied cell, which is then overwritten.
func (that *Engine) SelectMove(ctx context.Context, player entity.Player) (int, error) {
	var (
		cell int
		err  error
	)

	if that.isComputer(player) {
		cell, err = that.bot.ChooseCell(&that.board)
		if err != nil {
			return -1, fmt.Errorf("computer failed to choose cell: %w", err)
		}
	} else {
		cell, err = that.askField(ctx)
		if err != nil {
			return -1, err
		}
	}

	if err = that.mark(cell, player); err != nil {
		return -1, err
	}

	if !that.isComputer(player) {
		fmt.Fprintln(that.out)
	}

	that.logger.DebugContext(ctx, "move played", "player", player.String(), "cell", cell, "computer", that.isComputer(player))

	return cell, nil
}

func (that *Engine) isComputer(player entity.Player) bool {
	return that.cpuMode && player == entity.PlayerA
}

func (that *Engine) askField(ctx context.Context) (int, error) {
	input, err := that.input.GetValidInput(ctx, promptField, console.FieldOptions...)
	if err != nil {
		return -1, fmt.Errorf("failed to read field number: %w", err)
	}

	field, err := strconv.Atoi(input)
	if err != nil {
		return -1, fmt.Errorf("failed to parse field number %q: %w", input, err)
	}

	return field - 1, nil
}

func (that *Engine) mark(cell int, player entity.Player) error {
	symbol, err := that.symbols.Of(player)
	if err != nil {
		return fmt.Errorf("failed to get symbol: %w", err)
	}

	if err = that.board.Place(cell, symbol); err != nil {
		return fmt.Errorf("failed to place symbol: %w", err)
	}

	return nil
}

func (that *Engine) playerToMove() entity.Player {
	if that.moves%2 == 0 {
		return entity.PlayerA
	}

	return entity.PlayerB
}

// RunRound plays moves until the board reaches a final result, prints it and counts it.
func (that *Engine) RunRound(ctx context.Context) (entity.Result, error) {
	that.result = entity.ResultUndetermined

	for !that.result.IsFinished() {
		cell, err := that.SelectMove(ctx, that.playerToMove())
		if err != nil {
			return that.result, err
		}
		that.moves++

		fmt.Fprintln(that.out, that.board.String())

		result, err := that.EvaluateResult(cell)
		if err != nil {
			return that.result, fmt.Errorf("failed to evaluate result: %w", err)
		}
		that.result = result
	}

	fmt.Fprintln(that.out, that.result.Message())
	that.stats.Record(that.result)

	that.logger.InfoContext(ctx, "round finished", "result", string(that.result), "moves", that.board.Occupied())

	return that.result, nil
}
