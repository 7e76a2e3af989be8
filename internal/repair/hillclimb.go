package repair

import (
	"math/rand"
	"time"

	"delivery-agent-service/internal/domain"
	"delivery-agent-service/internal/search"
	"delivery-agent-service/internal/world"
)

const (
	defaultMaxRestarts = 10
	maxInnerIterations = 100
	improvementCut     = 10
	acceptWorseProb    = 0.1
)

// HillClimber repairs a route suffix by restart hill-climbing: each restart
// perturbs the best path found so far by replacing a short interior segment
// with a detour, keeping improvements and occasionally accepting a worse
// candidate to escape shallow local minima.
type HillClimber struct {
	World       *world.GridWorld
	Scorer      Scorer
	MaxRestarts int

	rng *rand.Rand
}

// NewHillClimber builds a hill-climber. A nil rng gets a time-based seed;
// tests inject a fixed one.
func NewHillClimber(w *world.GridWorld, rng *rand.Rand) *HillClimber {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &HillClimber{
		World:       w,
		Scorer:      Scorer{World: w, BlockPenalty: DefaultBlockPenalty},
		MaxRestarts: defaultMaxRestarts,
		rng:         rng,
	}
}

// Repair returns a replacement path from start to goal. When initial is
// non-empty it seeds the climb; otherwise each restart seeds from a fresh
// heuristic search. ok=false when no candidate connects start to goal.
func (h *HillClimber) Repair(start, goal domain.Position, initial domain.Path) (domain.Path, bool) {
	best := append(domain.Path(nil), initial...)
	bestScore := h.Scorer.Score(best)

	for restart := 0; restart < h.MaxRestarts; restart++ {
		current := append(domain.Path(nil), best...)
		if len(current) == 0 {
			seeded, ok := search.NewAStar(h.World, "manhattan").Search(start, goal)
			if !ok {
				continue
			}
			current = seeded
		}
		currentScore := h.Scorer.Score(current)

		improvements := 0
		for i := 0; i < maxInnerIterations; i++ {
			neighbor := h.neighbor(current)
			neighborScore := h.Scorer.Score(neighbor)

			if neighborScore < currentScore {
				current, currentScore = neighbor, neighborScore
				improvements++
			} else if h.rng.Float64() < acceptWorseProb {
				current, currentScore = neighbor, neighborScore
			}

			if improvements >= improvementCut {
				break
			}
		}

		if currentScore < bestScore {
			best, bestScore = current, currentScore
		}
	}

	if len(best) == 0 || best[0] != start || best[len(best)-1] != goal {
		return nil, false
	}
	return best, true
}

// neighbor perturbs the path by picking a random interior sub-segment of
// length 1-3 and replacing it with a detour. The original path is returned
// unchanged when no detour exists.
func (h *HillClimber) neighbor(p domain.Path) domain.Path {
	if len(p) <= 2 {
		return p
	}

	startIdx := 1 + h.rng.Intn(len(p)-2)
	endIdx := startIdx + 1 + h.rng.Intn(3)
	if endIdx > len(p)-1 {
		endIdx = len(p) - 1
	}

	detour, ok := h.detour(p[startIdx-1], p[endIdx], p[startIdx:endIdx])
	if !ok {
		return p
	}

	out := make(domain.Path, 0, len(p)-(endIdx-startIdx)+len(detour))
	out = append(out, p[:startIdx]...)
	out = append(out, detour...)
	out = append(out, p[endIdx:]...)
	return out
}

// detour finds the cells strictly between from and to via a breadth-first
// search constrained to avoid the replaced segment and any cell blocked at
// time 0.
func (h *HillClimber) detour(from, to domain.Position, avoid domain.Path) (domain.Path, bool) {
	avoidSet := make(map[domain.Position]struct{}, len(avoid))
	for _, p := range avoid {
		avoidSet[p] = struct{}{}
	}

	type qnode struct {
		pos    domain.Position
		parent int
	}
	nodes := []qnode{{pos: from, parent: -1}}
	queue := []int{0}
	visited := map[domain.Position]struct{}{from: {}}

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		cur := nodes[idx]

		if cur.pos == to {
			var rev domain.Path
			for i := idx; i >= 0; i = nodes[i].parent {
				rev = append(rev, nodes[i].pos)
			}
			// rev runs to..from; keep the interior, reversed.
			out := make(domain.Path, 0, len(rev))
			for i := len(rev) - 2; i >= 1; i-- {
				out = append(out, rev[i])
			}
			return out, true
		}

		for _, d := range domain.MoveDirections {
			dx, dy := d.Delta()
			next := domain.Position{X: cur.pos.X + dx, Y: cur.pos.Y + dy}
			if !h.World.InBounds(next) || h.World.IsBlocked(next, 0) {
				continue
			}
			if _, skip := avoidSet[next]; skip {
				continue
			}
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			nodes = append(nodes, qnode{pos: next, parent: idx})
			queue = append(queue, len(nodes)-1)
		}
	}
	return nil, false
}
