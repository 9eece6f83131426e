package apperror

import "errors"

var (
	ErrGameOver         = errors.New("game is already over")
	ErrInvalidMove      = errors.New("invalid move")
	ErrIndexOutOfRange  = errors.New("cell index out of range")
	ErrNoMovesAvailable = errors.New("no available moves")
	ErrNotYourTurn      = errors.New("it's not your turn")
)
