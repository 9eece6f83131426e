package usecase

import (
	"fmt"
	"log/slog"

	"github.com/aurianecodebien/tictactoe-cli/internal/apperror"
	"github.com/aurianecodebien/tictactoe-cli/internal/entity"
	"github.com/aurianecodebien/tictactoe-cli/internal/tictactoe"
)

type GameUseCase interface {
	NewGame() *entity.Game

	HumanTurn(game *entity.Game, mark entity.Mark, cell int) error
	BotTurn(game *entity.Game) (int, error)

	AvailableCells(game *entity.Game) []int
}

type botService interface {
	MakeTurn(game *entity.Game) (int, error)
}

type gameUseCase struct {
	logger     *slog.Logger
	botService botService
}

func NewGameUseCase(logger *slog.Logger, botService botService) GameUseCase {
	return &gameUseCase{
		logger:     logger.With("component", "game-usecase"),
		botService: botService,
	}
}

// NewGame starts a fresh match.
func (that *gameUseCase) NewGame() *entity.Game {
	that.logger.Debug("new game started")

	return entity.NewGame()
}

// HumanTurn plays the human's mark into cell.
func (that *gameUseCase) HumanTurn(game *entity.Game, mark entity.Mark, cell int) error {
	if err := tictactoe.MakeTurn(game, mark, cell); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	that.logger.Debug("human made turn", "mark", string(mark), "cell", cell)

	return nil
}

// BotTurn lets the bot pick and play its move, returning the cell it took.
func (that *gameUseCase) BotTurn(game *entity.Game) (int, error) {
	if game.IsFinished() {
		return 0, apperror.ErrGameOver
	}

	cell, err := that.botService.MakeTurn(game)
	if err != nil {
		return 0, fmt.Errorf("failed to make bot turn: %w", err)
	}

	return cell, nil
}

// AvailableCells lists the free cells of the game's board.
func (that *gameUseCase) AvailableCells(game *entity.Game) []int {
	return game.Board.AvailableCells()
}
