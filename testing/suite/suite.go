package suite

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Output collects everything written to the console.
	Output  *bytes.Buffer
	Console *console.Console
}

// New builds a console that answers prompts with lines, in order.
func New(t *testing.T, lines ...string) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var input string
	if len(lines) > 0 {
		input = strings.Join(lines, "\n") + "\n"
	}

	output := &bytes.Buffer{}

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Output:  output,
		Console: console.New(logger, strings.NewReader(input), output),
	}
}

// SequenceRandom replays values in order and starts over when they run out.
type SequenceRandom struct {
	values []int
	next   int
}

func NewSequenceRandom(values ...int) *SequenceRandom {
	return &SequenceRandom{values: values}
}

func (that *SequenceRandom) IntN(n int) int {
	value := that.values[that.next%len(that.values)]
	that.next++

	return value % n
}

// Calls reports how many values were drawn.
func (that *SequenceRandom) Calls() int {
	return that.next
}
