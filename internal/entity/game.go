package entity

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Game is the full state of one match.
type Game struct {
	Board  Board
	Turn   Mark
	Winner Mark
	Status string
}

// NewGame returns a fresh game: empty board, X to open.
func NewGame() *Game {
	return &Game{
		Board:  NewBoard(),
		Turn:   MarkX,
		Status: StatusOngoing,
	}
}

// Clone returns an independent copy of the game.
// Board is an array, so a shallow copy is a deep one.
func (that *Game) Clone() *Game {
	clone := *that

	return &clone
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}
