package console_test

import (
	"context"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_GetValidInput(t *testing.T) {
	t.Run("Re-prompts until input is allowed", func(t *testing.T) {
		// Given: a console fed with two invalid lines before a valid one
		ctx, st := suite.New(t, "abc", "3", "2")

		// When: asking for one of {"1", "2"}
		input, err := st.Console.GetValidInput(ctx, "Pick one", "1", "2")

		// Then: "2" is returned after two re-prompts
		require.NoError(t, err)
		assert.Equal(t, "2", input)
		assert.Equal(t, 3, strings.Count(st.Output.String(), "Pick one\n"))
	})

	t.Run("Matching is case-sensitive", func(t *testing.T) {
		// Given: a console where the first answer differs only in case
		ctx, st := suite.New(t, "A", "a")

		// When: asking for "a"
		input, err := st.Console.GetValidInput(ctx, "Letter?", "a")

		// Then: only the exact match is accepted
		require.NoError(t, err)
		assert.Equal(t, "a", input)
		assert.Equal(t, 2, strings.Count(st.Output.String(), "Letter?\n"))
	})

	t.Run("Whitespace is not trimmed", func(t *testing.T) {
		ctx, st := suite.New(t, " 1", "1 ", "1")

		input, err := st.Console.GetValidInput(ctx, "Field?", console.FieldOptions...)

		require.NoError(t, err)
		assert.Equal(t, "1", input)
		assert.Equal(t, 3, strings.Count(st.Output.String(), "Field?\n"))
	})

	t.Run("Very long line is rejected like any other input", func(t *testing.T) {
		// Given: a line far longer than any buffered token, followed by a valid answer
		ctx, st := suite.New(t, strings.Repeat("a", 70000), "2")

		// When: asking for one of {"1", "2"}
		input, err := st.Console.GetValidInput(ctx, "Pick one", "1", "2")

		// Then: the long line only causes a re-prompt
		require.NoError(t, err)
		assert.Equal(t, "2", input)
		assert.Equal(t, 2, strings.Count(st.Output.String(), "Pick one\n"))
	})

	t.Run("Windows line endings are stripped", func(t *testing.T) {
		ctx, st := suite.New(t, "1\r")

		input, err := st.Console.GetValidInput(ctx, "Field?", console.FieldOptions...)

		require.NoError(t, err)
		assert.Equal(t, "1", input)
	})

	t.Run("Prints a blank line after a non yes/no answer", func(t *testing.T) {
		ctx, st := suite.New(t, "5")

		_, err := st.Console.GetValidInput(ctx, "Field?", console.FieldOptions...)

		require.NoError(t, err)
		assert.Equal(t, "Field?\n\n", st.Output.String())
	})

	t.Run("Returns ErrInputClosed on end of input", func(t *testing.T) {
		// Given: a console whose only line is invalid
		ctx, st := suite.New(t, "nope")

		// When: the input runs out before a valid answer
		_, err := st.Console.GetValidInput(ctx, "Field?", console.FieldOptions...)

		// Then: ErrInputClosed should be returned
		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})

	t.Run("Stops when context is canceled", func(t *testing.T) {
		_, st := suite.New(t, "1")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := st.Console.GetValidInput(ctx, "Field?", console.FieldOptions...)

		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, st.Output.String())
	})
}

func TestConsole_YesNoNormalization(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "y", expected: console.Yes},
		{input: "Y", expected: console.Yes},
		{input: "yes", expected: console.Yes},
		{input: "YES", expected: console.Yes},
		{input: "n", expected: console.No},
		{input: "N", expected: console.No},
		{input: "no", expected: console.No},
		{input: "NO", expected: console.No},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ctx, st := suite.New(t, tt.input)

			answer, err := st.Console.GetValidInput(ctx, "Again? [y/n]", console.YesNoOptions...)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, answer)
		})
	}

	t.Run("Mixed case words are rejected", func(t *testing.T) {
		ctx, st := suite.New(t, "Yes", "No", "NO")

		answer, err := st.Console.GetValidInput(ctx, "Again? [y/n]", console.YesNoOptions...)

		require.NoError(t, err)
		assert.Equal(t, console.No, answer)
		assert.Equal(t, 3, strings.Count(st.Output.String(), "Again? [y/n]\n"))
	})
}
