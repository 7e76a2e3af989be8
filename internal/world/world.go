package world

import (
	"delivery-agent-service/internal/domain"
)

// Terrain movement costs. Water is effectively impassable and doubles as the
// out-of-bounds sentinel.
const (
	RoadCost  = 1
	GrassCost = 2
	MudCost   = 3
	WaterCost = 999

	// ImpassableCost is returned for any cell outside the grid.
	ImpassableCost = 999
)

// Move is one reachable neighbor together with its terrain cost.
type Move struct {
	To   domain.Position
	Cost int
}

// GridWorld models the delivery environment: per-cell terrain costs, cells
// that are permanently blocked, and obstacles that move on a fixed periodic
// schedule. It is a pure query surface; nothing mutates after configuration,
// so concurrent reads from multiple search calls are safe.
type GridWorld struct {
	Width  int
	Height int

	// Start is the agent's initial cell.
	Start domain.Position
	// Packages maps package id to its delivery cell.
	Packages map[int]domain.Position

	costs   [][]int // indexed [y][x]
	static  map[domain.Position]struct{}
	dynamic map[string]*DynamicObstacle
}

// New returns a width x height world with every cell defaulting to road cost.
func New(width, height int) *GridWorld {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	costs := make([][]int, height)
	for y := range costs {
		row := make([]int, width)
		for x := range row {
			row[x] = RoadCost
		}
		costs[y] = row
	}

	return &GridWorld{
		Width:    width,
		Height:   height,
		Packages: make(map[int]domain.Position),
		costs:    costs,
		static:   make(map[domain.Position]struct{}),
		dynamic:  make(map[string]*DynamicObstacle),
	}
}

// SetTerrain sets the movement cost of a cell. Out-of-bounds positions and
// negative costs are ignored, matching the loader's skip-don't-fail posture.
func (w *GridWorld) SetTerrain(p domain.Position, cost int) {
	if !w.InBounds(p) || cost < 0 {
		return
	}
	w.costs[p.Y][p.X] = cost
}

// AddStaticObstacle marks a cell as permanently blocked.
func (w *GridWorld) AddStaticObstacle(p domain.Position) {
	w.static[p] = struct{}{}
}

// AddDynamicObstacle registers a moving obstacle under its name. A later
// obstacle with the same name replaces the earlier one.
func (w *GridWorld) AddDynamicObstacle(o *DynamicObstacle) {
	if o == nil {
		return
	}
	w.dynamic[o.Name] = o
}

// AddPackage registers a delivery goal.
func (w *GridWorld) AddPackage(id int, dest domain.Position) {
	w.Packages[id] = dest
}

// InBounds reports whether the position lies on the grid.
func (w *GridWorld) InBounds(p domain.Position) bool {
	return p.X >= 0 && p.X < w.Width && p.Y >= 0 && p.Y < w.Height
}

// TerrainCost returns the movement cost of a cell, or ImpassableCost for any
// position outside the grid.
func (w *GridWorld) TerrainCost(p domain.Position) int {
	if !w.InBounds(p) {
		return ImpassableCost
	}
	return w.costs[p.Y][p.X]
}

// IsBlocked reports whether the cell is occupied at the given time, either by
// a static obstacle or by a dynamic obstacle's predicted position. The
// prediction is a pure function of time, so identical arguments always give
// identical answers.
func (w *GridWorld) IsBlocked(p domain.Position, time int) bool {
	if _, ok := w.static[p]; ok {
		return true
	}
	for _, o := range w.dynamic {
		if o.PositionAt(time) == p {
			return true
		}
	}
	return false
}

// ValidMoves returns the axis-aligned neighbors of p that are in bounds and
// not blocked at the given time, each with its terrain cost.
func (w *GridWorld) ValidMoves(p domain.Position, time int) []Move {
	moves := make([]Move, 0, len(domain.MoveDirections))
	for _, d := range domain.MoveDirections {
		dx, dy := d.Delta()
		next := domain.Position{X: p.X + dx, Y: p.Y + dy}
		if !w.InBounds(next) || w.IsBlocked(next, time) {
			continue
		}
		moves = append(moves, Move{To: next, Cost: w.TerrainCost(next)})
	}
	return moves
}

// StaticObstacleCount reports how many cells are permanently blocked.
func (w *GridWorld) StaticObstacleCount() int { return len(w.static) }

// DynamicObstacleCount reports how many moving obstacles are registered.
func (w *GridWorld) DynamicObstacleCount() int { return len(w.dynamic) }
