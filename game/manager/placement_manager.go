package manager

import (
	"snake-console/game/entity"
	"snake-console/game/types"

	"golang.org/x/exp/rand"
)

// Placer picks a free cell for an apple or a stone. ok is false when the
// grid has no free cell left.
type Placer interface {
	Place(snake *entity.Snake, blocked ...types.Point) (pos types.Point, ok bool)
}

// RandomPlacer chooses uniformly among the free cells of the grid.
type RandomPlacer struct {
	collisionMgr *CollisionManager
	grid         types.Grid
	rng          *rand.Rand
}

func NewRandomPlacer(grid types.Grid, seed uint64) *RandomPlacer {
	return &RandomPlacer{
		collisionMgr: NewCollisionManager(grid),
		grid:         grid,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

func (rp *RandomPlacer) Place(snake *entity.Snake, blocked ...types.Point) (types.Point, bool) {
	// Rejection sampling is fast while the board is mostly empty.
	for attempt := 0; attempt < rp.grid.Cells(); attempt++ {
		pos := types.Point{
			Row: rp.rng.Intn(rp.grid.Size),
			Col: rp.rng.Intn(rp.grid.Size),
		}
		if rp.collisionMgr.ValidateSpawnPosition(pos, snake, blocked...) {
			return pos, true
		}
	}

	free := rp.freeCells(snake, blocked)
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[rp.rng.Intn(len(free))], true
}

func (rp *RandomPlacer) freeCells(snake *entity.Snake, blocked []types.Point) []types.Point {
	free := make([]types.Point, 0, rp.grid.Cells())
	for row := 0; row < rp.grid.Size; row++ {
		for col := 0; col < rp.grid.Size; col++ {
			pos := types.Point{Row: row, Col: col}
			if rp.collisionMgr.ValidateSpawnPosition(pos, snake, blocked...) {
				free = append(free, pos)
			}
		}
	}
	return free
}

// FixedPlacer hands out positions from a queue, skipping occupied ones.
// Once the queue is empty it falls back to the first free cell in row order.
type FixedPlacer struct {
	collisionMgr *CollisionManager
	grid         types.Grid
	queue        []types.Point
}

func NewFixedPlacer(grid types.Grid, positions ...types.Point) *FixedPlacer {
	return &FixedPlacer{
		collisionMgr: NewCollisionManager(grid),
		grid:         grid,
		queue:        positions,
	}
}

func (fp *FixedPlacer) Place(snake *entity.Snake, blocked ...types.Point) (types.Point, bool) {
	for len(fp.queue) > 0 {
		pos := fp.queue[0]
		fp.queue = fp.queue[1:]
		if fp.collisionMgr.ValidateSpawnPosition(pos, snake, blocked...) {
			return pos, true
		}
	}
	for row := 0; row < fp.grid.Size; row++ {
		for col := 0; col < fp.grid.Size; col++ {
			pos := types.Point{Row: row, Col: col}
			if fp.collisionMgr.ValidateSpawnPosition(pos, snake, blocked...) {
				return pos, true
			}
		}
	}
	return types.Point{}, false
}
