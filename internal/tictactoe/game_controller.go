package tictactoe

import (
	"fmt"

	"github.com/aurianecodebien/tictactoe-cli/internal/apperror"
	"github.com/aurianecodebien/tictactoe-cli/internal/entity"
)

// WinCombos lists every winning line: three rows, three columns, two diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Scores Evaluate assigns to a position.
const (
	WinScore  = 10
	LossScore = -10
	DrawScore = 0
)

// MakeTurn plays mark into cell and advances the game state.
func MakeTurn(game *entity.Game, mark entity.Mark, cell int) error {
	if game.IsFinished() {
		return apperror.ErrGameOver
	}

	if mark != game.Turn {
		return fmt.Errorf("%w: %s moves next", apperror.ErrNotYourTurn, game.Turn)
	}

	if err := game.Board.Place(cell, mark); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	updateGameStatus(game, mark)

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game, mark entity.Mark) {
	switch winner := Winner(game.Board); winner {
	case entity.MarkX, entity.MarkO:
		game.Winner = winner
		game.Status = entity.StatusFinished
	case entity.MarkTie:
		game.Winner = entity.MarkTie
		game.Status = entity.StatusFinished
	default:
		game.Turn = mark.Opponent()
	}
}

// HasWon reports whether mark holds a full winning line.
func HasWon(board entity.Board, mark entity.Mark) bool {
	for _, combo := range WinCombos {
		if board[combo[0]] == mark && board[combo[1]] == mark && board[combo[2]] == mark {
			return true
		}
	}

	return false
}

// Winner returns the mark holding a winning line, MarkTie when the board
// filled up without one, and MarkEmpty while the game is still open.
// X is checked before O; legal play never produces two winners at once.
func Winner(board entity.Board) entity.Mark {
	if HasWon(board, entity.MarkX) {
		return entity.MarkX
	}

	if HasWon(board, entity.MarkO) {
		return entity.MarkO
	}

	if board.IsFull() {
		return entity.MarkTie
	}

	return entity.MarkEmpty
}

// Evaluate scores the position from mark's point of view.
func Evaluate(board entity.Board, mark entity.Mark) int {
	switch Winner(board) {
	case mark:
		return WinScore
	case mark.Opponent():
		return LossScore
	default:
		return DrawScore
	}
}
