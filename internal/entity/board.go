package entity

import (
	"fmt"

	"github.com/aurianecodebien/tictactoe-cli/internal/apperror"
)

// BoardSize is the number of cells on the 3x3 grid.
const BoardSize = 9

// Board is the 3x3 grid, indexed 0..8 row by row.
type Board [BoardSize]Mark

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// Place puts mark into cell. The cell must be on the board and free.
func (that *Board) Place(cell int, mark Mark) error {
	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: cell %d is out of range", apperror.ErrInvalidMove, cell)
	}

	if that[cell] != MarkEmpty {
		return fmt.Errorf("%w: cell %d is already occupied", apperror.ErrInvalidMove, cell)
	}

	that[cell] = mark

	return nil
}

// Cell returns the mark at the given cell.
func (that Board) Cell(cell int) (Mark, error) {
	if cell < 0 || cell >= BoardSize {
		return MarkEmpty, fmt.Errorf("%w: cell %d", apperror.ErrIndexOutOfRange, cell)
	}

	return that[cell], nil
}

// AvailableCells returns the indexes of all free cells in ascending order.
func (that Board) AvailableCells() []int {
	cells := make([]int, 0, BoardSize)

	for i, mark := range that {
		if mark == MarkEmpty {
			cells = append(cells, i)
		}
	}

	return cells
}

// IsFull reports whether no free cell is left.
func (that Board) IsFull() bool {
	for _, mark := range that {
		if mark == MarkEmpty {
			return false
		}
	}

	return true
}
