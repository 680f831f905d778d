package entity

import (
	"testing"

	"snake-console/game/types"

	"github.com/stretchr/testify/assert"
)

func pt(row, col int) types.Point {
	return types.Point{Row: row, Col: col}
}

func TestSnakeMove(t *testing.T) {
	t.Run("moves head forward and drops the tail", func(t *testing.T) {
		s := NewSnake(types.Right, pt(2, 2), pt(2, 1), pt(2, 0))

		s.Move()

		assert.Equal(t, []types.Point{pt(2, 3), pt(2, 2), pt(2, 1)}, s.Body)
	})

	t.Run("keeps the tail when growing", func(t *testing.T) {
		s := NewSnake(types.Right, pt(2, 2), pt(2, 1))

		s.Grow()
		s.Move()
		assert.Equal(t, []types.Point{pt(2, 3), pt(2, 2), pt(2, 1)}, s.Body)

		s.Move()
		assert.Equal(t, 3, s.Len(), "growth applies to a single move")
	})

	t.Run("commits the pending heading", func(t *testing.T) {
		s := NewSnake(types.Right, pt(2, 2), pt(2, 1))

		s.Turn(types.Down)
		assert.Equal(t, types.Right, s.Direction)
		assert.Equal(t, pt(3, 2), s.NextHead())

		s.Move()
		assert.Equal(t, types.Down, s.Direction)
		assert.Equal(t, pt(3, 2), s.GetHead())
	})
}

func TestSnakeTurn(t *testing.T) {
	t.Run("rejects reversal onto the neck", func(t *testing.T) {
		s := NewSnake(types.Right, pt(2, 2), pt(2, 1))

		s.Turn(types.Left)
		s.Move()

		assert.Equal(t, types.Right, s.Direction)
		assert.Equal(t, pt(2, 3), s.GetHead())
	})

	t.Run("compares against the committed heading", func(t *testing.T) {
		s := NewSnake(types.Right, pt(2, 2), pt(2, 1))

		s.Turn(types.Up)
		s.Turn(types.Left)

		assert.Equal(t, types.Up, s.Pending())
	})

	t.Run("single segment may reverse", func(t *testing.T) {
		s := NewSnake(types.Right, pt(2, 2))

		s.TurnLeft()
		s.Move()

		assert.Equal(t, types.Left, s.Direction)
		assert.Equal(t, pt(2, 1), s.GetHead())
	})

	t.Run("none keeps heading", func(t *testing.T) {
		s := NewSnake(types.Down, pt(0, 0))

		s.Turn(types.None)

		assert.Equal(t, types.Down, s.Pending())
	})

	t.Run("named turns", func(t *testing.T) {
		s := NewSnake(types.Right, pt(0, 0))

		s.TurnUp()
		assert.Equal(t, types.Up, s.Pending())
		s.TurnDown()
		assert.Equal(t, types.Down, s.Pending())
		s.TurnRight()
		assert.Equal(t, types.Right, s.Pending())
	})
}

func TestSnakeOccupies(t *testing.T) {
	s := NewSnake(types.Right, pt(1, 1), pt(1, 0))

	assert.True(t, s.Occupies(pt(1, 0)))
	assert.False(t, s.Occupies(pt(0, 0)))
}
