package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoard(t *testing.T) {
	t.Run("New board is empty", func(t *testing.T) {
		board := NewBoard(5)

		assert.Equal(t, 5, board.Size())
		assert.Zero(t, board.OccupiedCount(EmptyCell))
	})

	t.Run("At returns EmptyCell off the board", func(t *testing.T) {
		board := NewBoard(3)

		assert.Equal(t, EmptyCell, board.At(Point{X: -1, Y: 0}))
		assert.Equal(t, EmptyCell, board.At(Point{X: 3, Y: 1}))
	})

	t.Run("Corners", func(t *testing.T) {
		board := NewBoard(20)

		assert.ElementsMatch(t, []Point{{0, 0}, {19, 0}, {0, 19}, {19, 19}}, board.Corners())
	})

	t.Run("OccupiedCount by color", func(t *testing.T) {
		// Given: a board with two red cells and one blue cell
		board := NewBoard(4)
		board.Set(Point{X: 0, Y: 0}, Red)
		board.Set(Point{X: 1, Y: 1}, Red)
		board.Set(Point{X: 3, Y: 3}, Blue)

		// Then: counts are reported per color and in total
		assert.Equal(t, 2, board.OccupiedCount(Red))
		assert.Equal(t, 1, board.OccupiedCount(Blue))
		assert.Equal(t, 3, board.OccupiedCount(EmptyCell))
	})

	t.Run("Clone is independent", func(t *testing.T) {
		board := NewBoard(2)
		clone := board.Clone()

		clone.Set(Point{X: 1, Y: 1}, Green)

		assert.Equal(t, EmptyCell, board.At(Point{X: 1, Y: 1}))
	})
}
