package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

var ErrModeNotFound = errors.New("mode argument is missing, expected true (computer) or false (friend)")

// ParseMode reads the initial mode from the first argument: true plays against the computer.
func ParseMode(args []string) (bool, error) {
	if len(args) == 0 {
		return false, ErrModeNotFound
	}

	cpuMode, err := strconv.ParseBool(args[0])
	if err != nil {
		return false, fmt.Errorf("invalid mode %q: %w", args[0], err)
	}

	return cpuMode, nil
}

// RunApp - runs one game session on the given terminal streams.
func RunApp(logger *slog.Logger, conf *config.Config, args []string, stdin io.Reader, stdout io.Writer) error {
	cpuMode, err := ParseMode(args)
	if err != nil {
		return err
	}

	sessionID := uuid.NewString()
	sessionLogger := logger.With("session", sessionID)
	log := sessionLogger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	terminal := console.New(sessionLogger, stdin, stdout)
	bot := service.NewBotService(service.NewRandom())
	engine := tictactoe.NewEngine(sessionLogger, terminal, bot, stdout, conf.Players.Symbols(), cpuMode)

	log.Info("Starting session", "cpuMode", cpuMode)

	stats, err := engine.RunSession(ctx)
	if err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	log.Info("Session finished",
		"rounds", stats.Rounds,
		"draws", stats.Draws,
		"playerAWins", stats.PlayerAWins,
		"playerBWins", stats.PlayerBWins,
	)

	return nil
}
