package entity

import "snake-console/game/types"

// Apple is eaten by the snake and moved somewhere free afterwards.
type Apple struct {
	Position types.Point
}

// Stone is a static obstacle; hitting it ends the game.
type Stone struct {
	Position types.Point
}

func NewApple(p types.Point) *Apple {
	return &Apple{Position: p}
}

func NewStone(p types.Point) *Stone {
	return &Stone{Position: p}
}
