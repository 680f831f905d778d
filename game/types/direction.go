package types

// Direction is a cardinal heading.
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// ToPoint converts a Direction into a unit movement delta.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{Row: -1, Col: 0}
	case Right:
		return Point{Row: 0, Col: 1}
	case Down:
		return Point{Row: 1, Col: 0}
	case Left:
		return Point{Row: 0, Col: -1}
	default:
		return Point{}
	}
}

// Opposite returns the heading pointing the other way. None has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Right:
		return "RIGHT"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	default:
		return "NONE"
	}
}
