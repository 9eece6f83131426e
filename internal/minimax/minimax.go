package minimax

import (
	"math"

	"github.com/aurianecodebien/tictactoe-cli/internal/apperror"
	"github.com/aurianecodebien/tictactoe-cli/internal/entity"
	"github.com/aurianecodebien/tictactoe-cli/internal/tictactoe"
)

// FindBestMove returns the strongest cell for the player whose turn it is.
// It assumes the opponent also plays perfectly.
func FindBestMove(game *entity.Game) (int, error) {
	if game.IsFinished() {
		return 0, apperror.ErrGameOver
	}

	cells := game.Board.AvailableCells()
	if len(cells) == 0 {
		return 0, apperror.ErrNoMovesAvailable
	}

	cell, _ := search(game, cells)

	return cell, nil
}

// search scores every candidate cell and keeps the best one.
// On equal scores the earliest candidate stays, so ties resolve
// to the lowest cell index.
func search(game *entity.Game, cells []int) (int, int) {
	bestCell := cells[0]
	bestScore := math.MinInt

	for _, cell := range cells {
		score := minimax(simulate(game, cell), 1, false, game.Turn)
		if score > bestScore {
			bestScore = score
			bestCell = cell
		}
	}

	return bestCell, bestScore
}

// minimax walks the game tree below the given position. The score is
// adjusted by depth, so wins found earlier are worth more and losses
// found later hurt less.
func minimax(game *entity.Game, depth int, maximizing bool, searching entity.Mark) int {
	switch tictactoe.Winner(game.Board) {
	case searching:
		return tictactoe.WinScore - depth
	case searching.Opponent():
		return depth + tictactoe.LossScore
	case entity.MarkTie:
		return tictactoe.DrawScore
	}

	if maximizing {
		best := math.MinInt
		for _, cell := range game.Board.AvailableCells() {
			best = max(best, minimax(simulate(game, cell), depth+1, false, searching))
		}

		return best
	}

	best := math.MaxInt
	for _, cell := range game.Board.AvailableCells() {
		best = min(best, minimax(simulate(game, cell), depth+1, true, searching))
	}

	return best
}

// simulate plays cell on a copy of the game, leaving the original untouched.
func simulate(game *entity.Game, cell int) *entity.Game {
	next := game.Clone()
	_ = tictactoe.MakeTurn(next, next.Turn, cell) // cell comes from AvailableCells

	return next
}
