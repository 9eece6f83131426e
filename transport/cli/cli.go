package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/aurianecodebien/tictactoe-cli/internal/entity"
)

type gameUseCase interface {
	NewGame() *entity.Game

	HumanTurn(game *entity.Game, mark entity.Mark, cell int) error
	BotTurn(game *entity.Game) (int, error)

	AvailableCells(game *entity.Game) []int
}

const (
	msgInvalidInput = "Invalid input! Please enter a number between 1 and 9."
	msgCellTaken    = "That position is already taken! Try another."
	msgInvalidMove  = "Invalid move! Try again."
)

// Options tune a single game session.
type Options struct {
	HumanMark entity.Mark
	BotDelay  time.Duration
	NoColor   bool
}

// Runner drives one interactive match on a terminal.
type Runner struct {
	logger *slog.Logger
	uGame  gameUseCase

	in     io.Reader
	out    io.Writer
	render *renderer

	humanMark entity.Mark
	botDelay  time.Duration
}

func New(logger *slog.Logger, uGame gameUseCase, in io.Reader, out io.Writer, opts Options) *Runner {
	humanMark := opts.HumanMark
	if humanMark != entity.MarkX && humanMark != entity.MarkO {
		humanMark = entity.MarkX
	}

	return &Runner{
		logger:    logger.With("component", "cli"),
		uGame:     uGame,
		in:        in,
		out:       out,
		render:    newRenderer(out, opts.NoColor),
		humanMark: humanMark,
		botDelay:  opts.BotDelay,
	}
}

// Start - runs one match until it ends, the input closes or ctx is canceled.
func (that *Runner) Start(ctx context.Context) error {
	that.printWelcome()

	game := that.uGame.NewGame()
	lines := readLines(that.in)

	for {
		that.print(that.render.board(game.Board))

		if game.IsFinished() {
			that.printResult(game)

			return nil
		}

		var err error
		if game.Turn == that.humanMark {
			err = that.humanTurn(ctx, game, lines)
		} else {
			err = that.botTurn(ctx, game)
		}

		switch {
		case err == nil:
		case errors.Is(err, context.Canceled), errors.Is(err, io.EOF):
			that.println("\nGoodbye!")

			return nil
		default:
			return err
		}
	}
}

// humanTurn - prompts until the human plays a legal cell.
func (that *Runner) humanTurn(ctx context.Context, game *entity.Game, lines <-chan string) error {
	log := that.logger.With("method", "humanTurn")

	for {
		cell, err := that.promptCell(ctx, game, lines)
		if err != nil {
			return err
		}

		if err = that.uGame.HumanTurn(game, that.humanMark, cell); err != nil {
			log.Debug("turn rejected", "cell", cell, "error", err)
			that.println(msgInvalidMove)

			continue
		}

		return nil
	}
}

// promptCell - reads positions until one lands on a free cell.
func (that *Runner) promptCell(ctx context.Context, game *entity.Game, lines <-chan string) (int, error) {
	available := that.uGame.AvailableCells(game)

	for {
		that.printf("\nYour turn! Enter a position (1-9): ")

		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return 0, io.EOF
			}

			cell, err := parseCell(line)
			if err != nil {
				that.println(msgInvalidInput)

				continue
			}

			if !slices.Contains(available, cell) {
				that.println(msgCellTaken)

				continue
			}

			return cell, nil
		}
	}
}

// botTurn - lets the bot move after a short pause, so its reply reads
// like an answer instead of appearing in the same instant.
func (that *Runner) botTurn(ctx context.Context, game *entity.Game) error {
	that.println("\nBot is thinking...")

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(that.botDelay):
	}

	cell, err := that.uGame.BotTurn(game)
	if err != nil {
		return fmt.Errorf("failed to make bot turn: %w", err)
	}

	that.printf("Bot played position %d\n", cell+1)

	return nil
}

func (that *Runner) printWelcome() {
	that.println(that.render.title("Welcome to Tic-Tac-Toe!"))
	that.printf("You are %s, and the bot is %s.\n", that.render.mark(that.humanMark), that.render.mark(that.humanMark.Opponent()))
	that.println("Positions are numbered 1-9:")
	that.print(that.render.positionGuide())
}

func (that *Runner) printResult(game *entity.Game) {
	switch game.Winner {
	case that.humanMark:
		that.println("\nCongratulations! You won!")
	case that.humanMark.Opponent():
		that.println("\nThe bot wins! Better luck next time!")
	default:
		that.println("\nIt's a draw! Well played!")
	}
}

func (that *Runner) print(s string) {
	_, _ = fmt.Fprint(that.out, s)
}

func (that *Runner) println(s string) {
	_, _ = fmt.Fprintln(that.out, s)
}

func (that *Runner) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(that.out, format, a...)
}
