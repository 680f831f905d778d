package manager

import (
	"snake-console/game/entity"
	"snake-console/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	StoneCollision
	SelfCollision
	BoardFilled
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case StoneCollision:
		return "stone"
	case SelfCollision:
		return "self"
	case BoardFilled:
		return "board filled"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckHead classifies the snake's current head against walls, the stone
// and the rest of its own body.
func (cm *CollisionManager) CheckHead(snake *entity.Snake, stone *entity.Stone) CollisionType {
	head := snake.GetHead()

	if cm.isWallCollision(head) {
		return WallCollision
	}
	if stone != nil && head == stone.Position {
		return StoneCollision
	}
	for _, part := range snake.Body[1:] {
		if part == head {
			return SelfCollision
		}
	}
	return NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// ValidateSpawnPosition checks that pos is on the grid and not covered by
// the snake or any of the blocked points.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake, blocked ...types.Point) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	if snake != nil && snake.Occupies(pos) {
		return false
	}
	for _, b := range blocked {
		if pos == b {
			return false
		}
	}
	return true
}
