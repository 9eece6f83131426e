package service

import (
	"fmt"
	"log/slog"

	"github.com/aurianecodebien/tictactoe-cli/internal/entity"
	"github.com/aurianecodebien/tictactoe-cli/internal/minimax"
	"github.com/aurianecodebien/tictactoe-cli/internal/tictactoe"
)

// BotService picks and plays the bot's moves.
type BotService interface {
	MakeTurn(game *entity.Game) (int, error)
}

type botService struct {
	logger *slog.Logger
}

// NewBotService returns a bot backed by exhaustive game tree search.
func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot-service"),
	}
}

// MakeTurn plays the strongest free cell for the side whose turn it is
// and returns the cell it took.
func (that *botService) MakeTurn(game *entity.Game) (int, error) {
	cell, err := minimax.FindBestMove(game)
	if err != nil {
		return 0, fmt.Errorf("failed to find best move: %w", err)
	}

	if err = tictactoe.MakeTurn(game, game.Turn, cell); err != nil {
		return 0, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot made turn", "cell", cell)

	return cell, nil
}
