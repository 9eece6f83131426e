package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurianecodebien/tictactoe-cli/internal/entity"
	"github.com/aurianecodebien/tictactoe-cli/internal/service"
	"github.com/aurianecodebien/tictactoe-cli/internal/usecase"
	"github.com/aurianecodebien/tictactoe-cli/testing/suite"
)

func newRunner(t *testing.T, in io.Reader, opts Options) (context.Context, *Runner, *bytes.Buffer) {
	t.Helper()

	ctx, s := suite.New(t)
	uGame := usecase.NewGameUseCase(s.Logger, service.NewBotService(s.Logger))

	out := &bytes.Buffer{}
	runner := New(s.Logger, uGame, in, out, opts)

	return ctx, runner, out
}

func TestRunner_Start(t *testing.T) {
	t.Run("Bot beats a naive strategy over a full match", func(t *testing.T) {
		// Given: a human who answers every prompt with the next digit,
		// starting with one garbage line
		in := strings.NewReader("abc\n1\n2\n3\n4\n")
		ctx, runner, out := newRunner(t, in, Options{NoColor: true})

		// When: running the match
		err := runner.Start(ctx)
		require.NoError(t, err)

		transcript := out.String()

		// Then: the match opens with the welcome block
		assert.Contains(t, transcript, "Welcome to Tic-Tac-Toe!")
		assert.Contains(t, transcript, "You are X, and the bot is O.")
		assert.Contains(t, transcript, " 1 | 2 | 3 ")

		// And: bad input and a taken cell each trigger a re-prompt
		assert.Contains(t, transcript, msgInvalidInput)
		assert.Contains(t, transcript, msgCellTaken)
		assert.Equal(t, 5, strings.Count(transcript, "Your turn! Enter a position (1-9):"))

		// And: the bot answers the corner with the center, blocks the
		// top row threat and wins on the anti diagonal
		assert.Contains(t, transcript, "Bot played position 5")
		assert.Contains(t, transcript, "Bot played position 3")
		assert.Contains(t, transcript, "Bot played position 7")

		// And: the final board and result line close the match
		finalBoard := "\n" +
			" X | X | O \n" +
			" -----------\n" +
			" X | O |   \n" +
			" -----------\n" +
			" O |   |   \n"
		assert.Contains(t, transcript, finalBoard)
		assert.Contains(t, transcript, "The bot wins! Better luck next time!")
	})

	t.Run("Bot opens the match when the human plays O", func(t *testing.T) {
		// Given: the human chose O, so the bot holds X and moves first
		in := strings.NewReader("")
		ctx, runner, out := newRunner(t, in, Options{HumanMark: entity.MarkO, NoColor: true})

		// When: running until the input ends
		err := runner.Start(ctx)
		require.NoError(t, err)

		transcript := out.String()

		// Then: the bot took the first free cell before any prompt
		assert.Contains(t, transcript, "You are O, and the bot is X.")
		assert.Contains(t, transcript, "Bot played position 1")
		assert.Contains(t, transcript, "Goodbye!")
	})

	t.Run("Closed input ends the session cleanly", func(t *testing.T) {
		// Given: an input stream that ends immediately
		in := strings.NewReader("")
		ctx, runner, out := newRunner(t, in, Options{NoColor: true})

		// When: running the match
		err := runner.Start(ctx)

		// Then: the runner says goodbye instead of failing
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Goodbye!")
	})

	t.Run("Canceled context stops the match", func(t *testing.T) {
		// Given: an input stream that never delivers a line
		pr, pw := io.Pipe()
		t.Cleanup(func() {
			_ = pw.Close()
		})

		_, runner, out := newRunner(t, pr, Options{NoColor: true})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When: running the match with a canceled context
		err := runner.Start(ctx)

		// Then: the runner says goodbye instead of failing
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Goodbye!")
	})
}

func TestRunner_printResult(t *testing.T) {
	t.Run("Each outcome gets its own closing line", func(t *testing.T) {
		for winner, message := range map[entity.Mark]string{
			entity.MarkX:   "Congratulations! You won!",
			entity.MarkO:   "The bot wins! Better luck next time!",
			entity.MarkTie: "It's a draw! Well played!",
		} {
			_, runner, out := newRunner(t, strings.NewReader(""), Options{NoColor: true})

			runner.printResult(&entity.Game{
				Winner: winner,
				Status: entity.StatusFinished,
			})

			assert.Contains(t, out.String(), message)
		}
	})
}
