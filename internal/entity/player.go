package entity

import "math/rand"

// Mark identifies one of the two players by the symbol they put on the board.
type Mark string

const (
	MarkX Mark = "X"
	MarkO Mark = "O"

	// MarkTie is the winner value of a finished game nobody won.
	MarkTie Mark = "-"

	// MarkEmpty is a free cell, and the winner value of a game still open.
	MarkEmpty Mark = ""
)

// Opponent returns the other playing mark.
func (that Mark) Opponent() Mark {
	if that == MarkX {
		return MarkO
	}

	return MarkX
}

// Symbol returns the character shown on the board for this mark.
func (that Mark) Symbol() string {
	if that == MarkEmpty {
		return " "
	}

	return string(that)
}

// RandomMarks returns the two playing marks in random order.
func RandomMarks() (Mark, Mark) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return MarkX, MarkO
	}

	return MarkO, MarkX
}
