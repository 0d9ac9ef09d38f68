package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	Yes = "y"
	No  = "n"
)

var (
	YesNoOptions = []string{"y", "Y", "n", "N", "yes", "no", "YES", "NO"}
	FieldOptions = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}
)

// Console is a line based terminal: one prompt out, one line in.
type Console struct {
	logger *slog.Logger
	reader *bufio.Reader
	out    io.Writer
}

func New(logger *slog.Logger, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// GetValidInput prints prompt and reads lines until one equals an option exactly.
// Yes/no answers come back as Yes or No, anything else is returned unchanged.
func (that *Console) GetValidInput(ctx context.Context, prompt string, options ...string) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("prompt canceled: %w", err)
		}

		if _, err := fmt.Fprintln(that.out, prompt); err != nil {
			return "", fmt.Errorf("failed to write prompt: %w", err)
		}

		input, err := that.readLine()
		if err != nil {
			return "", err
		}

		if slices.Contains(options, input) {
			return that.normalize(input), nil
		}

		that.logger.DebugContext(ctx, "rejected input", "prompt", prompt, "input", input)
	}
}

// readLine returns the next line without its line ending, whatever its length.
// A last line without a newline still counts.
func (that *Console) readLine() (string, error) {
	line, err := that.reader.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		if line == "" {
			return "", apperror.ErrInputClosed
		}
	default:
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}

func (that *Console) normalize(input string) string {
	switch input {
	case "y", "Y", "yes", "YES":
		return Yes
	case "n", "N", "no", "NO":
		return No
	default:
		fmt.Fprintln(that.out)
		return input
	}
}
