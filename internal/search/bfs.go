package search

import (
	"delivery-agent-service/internal/domain"
	"delivery-agent-service/internal/world"
)

// BFS explores nodes in first-in-first-out order and returns the path with
// the fewest moves.
//
// The visited set is keyed by position only, not by (position, time): a cell
// dismissed at one arrival time is never retried at another, even though a
// moving obstacle might make it passable later. This is an accepted
// approximation for static or obstacle-light grids; a time-correct variant
// would key visited by (position, time) at the cost of a far larger state
// space.
type BFS struct {
	World *world.GridWorld

	nodesExpanded int
}

func NewBFS(w *world.GridWorld) *BFS {
	return &BFS{World: w}
}

// Search returns the first path found from start to goal, or ok=false when
// the frontier is exhausted without reaching the goal.
func (s *BFS) Search(start, goal domain.Position) (domain.Path, bool) {
	s.nodesExpanded = 0

	a := newArena(start)
	queue := []int{0}
	visited := map[domain.Position]struct{}{start: {}}

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]

		if a.nodes[idx].pos == goal {
			return a.path(idx), true
		}

		s.nodesExpanded++
		for _, child := range a.expand(idx, s.World) {
			p := a.nodes[child].pos
			if _, seen := visited[p]; seen {
				continue
			}
			visited[p] = struct{}{}
			queue = append(queue, child)
		}
	}
	return nil, false
}

func (s *BFS) NodesExpanded() int { return s.nodesExpanded }
