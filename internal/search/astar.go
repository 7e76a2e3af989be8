package search

import (
	"container/heap"

	"delivery-agent-service/internal/domain"
	"delivery-agent-service/internal/world"
)

// AStar orders its frontier by g + h, where g is the accumulated terrain cost
// from the start and h the selected heuristic's estimate to the goal. A node
// is finalized only once popped; re-insertion with a strictly better g is
// allowed while a cell is still open.
type AStar struct {
	World *world.GridWorld
	H     Heuristic

	nodesExpanded int
}

// NewAStar builds an A* search using the named heuristic. Unknown names fall
// back to the zero heuristic (uniform-cost behavior).
func NewAStar(w *world.GridWorld, heuristic string) *AStar {
	return &AStar{World: w, H: HeuristicByName(heuristic)}
}

// Search returns a path from start to goal, or ok=false when the goal is
// unreachable.
func (s *AStar) Search(start, goal domain.Position) (domain.Path, bool) {
	s.nodesExpanded = 0

	a := newArena(start)
	fr := &frontier{{idx: 0, priority: s.H(start, goal)}}
	g := map[domain.Position]int{start: 0}
	closed := make(map[domain.Position]struct{})

	for fr.Len() > 0 {
		it := heap.Pop(fr).(frontierItem)
		n := a.nodes[it.idx]

		if _, done := closed[n.pos]; done {
			continue
		}
		closed[n.pos] = struct{}{}

		if n.pos == goal {
			return a.path(it.idx), true
		}

		s.nodesExpanded++
		for _, child := range a.expand(it.idx, s.World) {
			c := a.nodes[child]
			if _, done := closed[c.pos]; done {
				continue
			}
			if known, ok := g[c.pos]; !ok || c.cost < known {
				g[c.pos] = c.cost
				heap.Push(fr, frontierItem{
					idx:      child,
					priority: float64(c.cost) + s.H(c.pos, goal),
				})
			}
		}
	}
	return nil, false
}

func (s *AStar) NodesExpanded() int { return s.nodesExpanded }
