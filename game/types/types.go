package types

// Point is a cell on the board, addressed by row and column.
type Point struct {
	Row, Col int
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// MinGridSize leaves room for a snake, the cell ahead of it, an apple and a stone.
const MinGridSize = 3

// Grid is the square playing field.
type Grid struct {
	Size int
}

// Contains reports whether p lies inside [0, Size) on both axes.
func (g Grid) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < g.Size && p.Col >= 0 && p.Col < g.Size
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Size * g.Size
}
