package manager

import (
	"testing"

	"snake-console/game/entity"
	"snake-console/game/types"

	"github.com/stretchr/testify/assert"
)

func pt(row, col int) types.Point {
	return types.Point{Row: row, Col: col}
}

func TestCheckHead(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Size: 4})
	stone := entity.NewStone(pt(0, 0))

	tests := []struct {
		name  string
		snake *entity.Snake
		want  CollisionType
	}{
		{"free cell", entity.NewSnake(types.Right, pt(1, 1), pt(1, 0)), NoCollision},
		{"left the grid", entity.NewSnake(types.Right, pt(1, 4), pt(1, 3)), WallCollision},
		{"negative row", entity.NewSnake(types.Up, pt(-1, 2), pt(0, 2)), WallCollision},
		{"on the stone", entity.NewSnake(types.Up, pt(0, 0), pt(1, 0)), StoneCollision},
		{"bit itself", entity.NewSnake(types.Down, pt(1, 1), pt(1, 2), pt(2, 2), pt(2, 1), pt(1, 1)), SelfCollision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cm.CheckHead(tt.snake, stone))
		})
	}
}

func TestValidateSpawnPosition(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Size: 3})
	snake := entity.NewSnake(types.Right, pt(1, 1), pt(1, 0))

	assert.True(t, cm.ValidateSpawnPosition(pt(2, 2), snake))
	assert.False(t, cm.ValidateSpawnPosition(pt(1, 0), snake))
	assert.False(t, cm.ValidateSpawnPosition(pt(3, 0), snake))
	assert.False(t, cm.ValidateSpawnPosition(pt(0, 2), snake, pt(0, 2)))
}

func TestCollisionTypeString(t *testing.T) {
	assert.Equal(t, "none", NoCollision.String())
	assert.Equal(t, "wall", WallCollision.String())
	assert.Equal(t, "stone", StoneCollision.String())
	assert.Equal(t, "self", SelfCollision.String())
	assert.Equal(t, "board filled", BoardFilled.String())
}
