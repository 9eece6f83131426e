package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMark_Opponent(t *testing.T) {
	t.Run("X's opponent is O", func(t *testing.T) {
		assert.Equal(t, MarkO, MarkX.Opponent())
	})

	t.Run("O's opponent is X", func(t *testing.T) {
		assert.Equal(t, MarkX, MarkO.Opponent())
	})
}

func TestMark_Symbol(t *testing.T) {
	t.Run("Playing marks show their letter", func(t *testing.T) {
		assert.Equal(t, "X", MarkX.Symbol())
		assert.Equal(t, "O", MarkO.Symbol())
	})

	t.Run("Empty cell shows a blank", func(t *testing.T) {
		assert.Equal(t, " ", MarkEmpty.Symbol())
	})
}

func TestRandomMarks(t *testing.T) {
	t.Run("Always returns both playing marks", func(t *testing.T) {
		// When: drawing marks repeatedly
		// Then: the pair is always X and O, in either order
		for i := 0; i < 20; i++ {
			first, second := RandomMarks()

			assert.NotEqual(t, first, second)
			assert.Contains(t, []Mark{MarkX, MarkO}, first)
			assert.Contains(t, []Mark{MarkX, MarkO}, second)
		}
	})
}
