package entity

import (
	"snake-console/game/types"
)

// Snake keeps its body head-first. The requested heading is buffered in
// pending and only committed by Move, so a turn never takes effect mid-tick.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
	pending   types.Direction
	grow      bool
}

// NewSnake builds a snake from head-first segments moving in dir.
func NewSnake(dir types.Direction, body ...types.Point) *Snake {
	segments := make([]types.Point, len(body))
	copy(segments, body)
	return &Snake{
		Body:      segments,
		Direction: dir,
		pending:   dir,
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Pending returns the heading the next Move will commit.
func (s *Snake) Pending() types.Direction {
	return s.pending
}

// Turn records dir as the next heading. Reversing onto the neck is ignored
// unless the snake is a single segment.
func (s *Snake) Turn(dir types.Direction) {
	if dir == types.None {
		return
	}
	if len(s.Body) > 1 && dir == s.Direction.Opposite() {
		return
	}
	s.pending = dir
}

func (s *Snake) TurnUp() { s.Turn(types.Up) }
func (s *Snake) TurnDown() { s.Turn(types.Down) }
func (s *Snake) TurnLeft() { s.Turn(types.Left) }
func (s *Snake) TurnRight() { s.Turn(types.Right) }

// NextHead is where the head lands if the pending heading is committed.
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Add(s.pending.ToPoint())
}

// Grow keeps the tail on the next Move.
func (s *Snake) Grow() {
	s.grow = true
}

// Move commits the pending heading and advances one cell.
func (s *Snake) Move() {
	s.Direction = s.pending
	newHead := s.GetHead().Add(s.Direction.ToPoint())

	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead

	if s.grow {
		s.grow = false
		return
	}
	s.RemoveTail()
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}
