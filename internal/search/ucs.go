package search

import (
	"container/heap"

	"delivery-agent-service/internal/domain"
	"delivery-agent-service/internal/world"
)

// UniformCost expands nodes in non-decreasing accumulated-cost order and
// returns the first path reaching the goal, which is cost-optimal under the
// visited-by-position discipline.
type UniformCost struct {
	World *world.GridWorld

	nodesExpanded int
}

func NewUniformCost(w *world.GridWorld) *UniformCost {
	return &UniformCost{World: w}
}

// Search returns a cheapest path from start to goal, or ok=false when the
// goal is unreachable.
func (s *UniformCost) Search(start, goal domain.Position) (domain.Path, bool) {
	s.nodesExpanded = 0

	a := newArena(start)
	fr := &frontier{{idx: 0, priority: 0}}
	best := map[domain.Position]int{start: 0}

	for fr.Len() > 0 {
		it := heap.Pop(fr).(frontierItem)
		n := a.nodes[it.idx]

		// Lazy deletion: a cheaper entry for this cell was queued after this
		// one, so this pop is stale.
		if known, ok := best[n.pos]; ok && n.cost > known {
			continue
		}

		if n.pos == goal {
			return a.path(it.idx), true
		}

		s.nodesExpanded++
		for _, child := range a.expand(it.idx, s.World) {
			c := a.nodes[child]
			if known, ok := best[c.pos]; !ok || c.cost < known {
				best[c.pos] = c.cost
				heap.Push(fr, frontierItem{idx: child, priority: float64(c.cost)})
			}
		}
	}
	return nil, false
}

func (s *UniformCost) NodesExpanded() int { return s.nodesExpanded }
