package ui

import (
	"fmt"
	"strings"

	"snake-console/game"
	"snake-console/game/types"
)

const (
	emptyCell = '.'
	headCell  = '@'
	bodyCell  = 'o'
	appleCell = '*'
	stoneCell = '#'
)

// Renderer draws the board as text, one line per row, followed by the score.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Print(b game.Board) string {
	size := b.GetSize()
	grid := types.Grid{Size: size}

	cells := make([][]byte, size)
	for row := range cells {
		cells[row] = []byte(strings.Repeat(string(emptyCell), size))
	}
	put := func(p types.Point, c byte) {
		if grid.Contains(p) {
			cells[p.Row][p.Col] = c
		}
	}

	if stone := b.GetStone(); stone != nil {
		put(stone.Position, stoneCell)
	}
	if apple := b.GetApple(); apple != nil {
		put(apple.Position, appleCell)
	}

	length := 0
	if snake := b.GetSnake(); snake != nil {
		length = snake.Len()
		// Tail first so the head wins when it overlaps a segment.
		for i := len(snake.Body) - 1; i > 0; i-- {
			put(snake.Body[i], bodyCell)
		}
		if length > 0 {
			put(snake.GetHead(), headCell)
		}
	}

	var sb strings.Builder
	for _, row := range cells {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "Length: %d", length)
	return sb.String()
}
