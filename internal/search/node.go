package search

import (
	"delivery-agent-service/internal/domain"
	"delivery-agent-service/internal/world"
)

// node is one expansion-time record: a cell, the tick it is reached on, the
// accumulated path cost, and the goals collected along the way.
type node struct {
	pos    domain.Position
	time   int
	cost   int
	parent int // arena index, -1 for the root
	// delivered holds the package ids collected along this node's path. The
	// map is shared with the parent until a new id is collected, then copied;
	// a node's set is never mutated after creation.
	delivered map[int]struct{}
}

// arena owns every node of a single search call. Parents are referenced by
// index rather than pointer, so no node outlives the search that created it
// and path reconstruction needs no live references into the frontier.
type arena struct {
	nodes []node
}

func newArena(start domain.Position) *arena {
	return &arena{nodes: []node{{pos: start, parent: -1}}}
}

func (a *arena) add(n node) int {
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

// path reconstructs the position sequence from the root to node i by walking
// parent links and reversing.
func (a *arena) path(i int) domain.Path {
	var rev domain.Path
	for ; i >= 0; i = a.nodes[i].parent {
		rev = append(rev, a.nodes[i].pos)
	}
	for l, r := 0, len(rev)-1; l < r; l, r = l+1, r-1 {
		rev[l], rev[r] = rev[r], rev[l]
	}
	return rev
}

// expand generates one child per valid move from node idx, each arriving one
// tick later with the move's terrain cost added. A child landing on an
// uncollected package's cell collects its id. Returns the children's arena
// indices.
func (a *arena) expand(idx int, w *world.GridWorld) []int {
	parent := a.nodes[idx]
	moves := w.ValidMoves(parent.pos, parent.time)

	children := make([]int, 0, len(moves))
	for _, mv := range moves {
		delivered := parent.delivered
		for id, dest := range w.Packages {
			if dest != mv.To {
				continue
			}
			if _, ok := delivered[id]; ok {
				continue
			}
			next := make(map[int]struct{}, len(delivered)+1)
			for k := range delivered {
				next[k] = struct{}{}
			}
			next[id] = struct{}{}
			delivered = next
		}

		children = append(children, a.add(node{
			pos:       mv.To,
			time:      parent.time + 1,
			cost:      parent.cost + mv.Cost,
			parent:    idx,
			delivered: delivered,
		}))
	}
	return children
}
