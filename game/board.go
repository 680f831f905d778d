package game

import (
	"snake-console/game/entity"
	"snake-console/game/manager"
	"snake-console/game/types"

	"github.com/pkg/errors"
)

// Board is everything the runner and the printer need from the simulation.
type Board interface {
	Tact()
	IsGameOver() bool
	GetSnake() *entity.Snake
	GetApple() *entity.Apple
	GetStone() *entity.Stone
	GetSize() int
}

// SnakeBoard owns one snake, one apple and one stone on a square grid.
type SnakeBoard struct {
	grid         types.Grid
	snake        *entity.Snake
	apple        *entity.Apple
	stone        *entity.Stone
	collisionMgr *manager.CollisionManager
	placer       manager.Placer
	initialLen   int
	outcome      manager.CollisionType
}

// NewBoard assembles a board from explicit initial placements. The placer
// is only consulted when the apple has to be moved.
func NewBoard(size int, snake *entity.Snake, apple *entity.Apple, stone *entity.Stone, placer manager.Placer) *SnakeBoard {
	grid := types.Grid{Size: size}
	return &SnakeBoard{
		grid:         grid,
		snake:        snake,
		apple:        apple,
		stone:        stone,
		collisionMgr: manager.NewCollisionManager(grid),
		placer:       placer,
		initialLen:   snake.Len(),
		outcome:      manager.NoCollision,
	}
}

// NewDefaultBoard starts a one-segment snake in the centre heading right and
// lets the placer drop the stone and then the apple. The stone never lands
// on the cell ahead of the head.
func NewDefaultBoard(size int, placer manager.Placer) (*SnakeBoard, error) {
	if size < types.MinGridSize {
		return nil, errors.Errorf("board size %d is below the minimum of %d", size, types.MinGridSize)
	}

	center := types.Point{Row: size / 2, Col: size / 2}
	snake := entity.NewSnake(types.Right, center)

	stonePos, ok := placer.Place(snake, snake.NextHead())
	if !ok {
		return nil, errors.Errorf("no free cell for the stone on a %dx%d board", size, size)
	}
	applePos, ok := placer.Place(snake, stonePos)
	if !ok {
		return nil, errors.Errorf("no free cell for the apple on a %dx%d board", size, size)
	}

	return NewBoard(size, snake, entity.NewApple(applePos), entity.NewStone(stonePos), placer), nil
}

// Tact advances the game by one step. It does nothing once the game is over.
func (b *SnakeBoard) Tact() {
	if b.IsGameOver() {
		return
	}

	// The grow flag must be set before Move trims the tail.
	ate := b.snake.NextHead() == b.apple.Position
	if ate {
		b.snake.Grow()
	}
	b.snake.Move()

	if ate {
		pos, ok := b.placer.Place(b.snake, b.stone.Position)
		if !ok {
			b.outcome = manager.BoardFilled
			return
		}
		b.apple.Position = pos
	}

	b.outcome = b.collisionMgr.CheckHead(b.snake, b.stone)
}

func (b *SnakeBoard) IsGameOver() bool {
	return b.outcome != manager.NoCollision
}

// Outcome tells why the game ended, or NoCollision while it is running.
func (b *SnakeBoard) Outcome() manager.CollisionType {
	return b.outcome
}

// Score is the number of apples eaten so far.
func (b *SnakeBoard) Score() int {
	return b.snake.Len() - b.initialLen
}

func (b *SnakeBoard) GetSnake() *entity.Snake {
	return b.snake
}

func (b *SnakeBoard) GetApple() *entity.Apple {
	return b.apple
}

func (b *SnakeBoard) GetStone() *entity.Stone {
	return b.stone
}

func (b *SnakeBoard) GetSize() int {
	return b.grid.Size
}
