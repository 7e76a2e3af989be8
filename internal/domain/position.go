package domain

// Position is a single cell on the grid. Positions are value types: equality
// and map keys compare by coordinates.
type Position struct {
	X int
	Y int
}

// Direction is a unit move on the grid.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	// Stay is a defined direction (obstacle patterns may hold position) but is
	// never generated as an agent move.
	Stay
)

// Delta returns the coordinate offset of one step in the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "stay"
	}
}

// ParseDirection maps a direction name to its Direction. Matching is
// case-insensitive in spirit; callers lowercase the input.
func ParseDirection(name string) (Direction, bool) {
	switch name {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	case "stay":
		return Stay, true
	default:
		return Stay, false
	}
}

// MoveDirections are the four directions an agent may step in. There is no
// diagonal movement and no wait-in-place action.
var MoveDirections = [4]Direction{Up, Down, Left, Right}
