package repair

import (
	"math"
	"math/rand"
	"time"

	"delivery-agent-service/internal/domain"
	"delivery-agent-service/internal/search"
	"delivery-agent-service/internal/world"
)

const (
	defaultInitialTemp = 1000.0
	defaultCoolingRate = 0.95
)

// Annealer optimizes a route suffix with classic Metropolis acceptance: a
// worse neighbor is accepted with probability exp(-delta/temperature), and
// the temperature cools multiplicatively each iteration until it drops
// below 1. The best path observed anywhere in the walk is returned, not the
// path the walk ends on.
type Annealer struct {
	World       *world.GridWorld
	Scorer      Scorer
	InitialTemp float64
	CoolingRate float64

	rng *rand.Rand
}

// NewAnnealer builds an annealer. A nil rng gets a time-based seed.
func NewAnnealer(w *world.GridWorld, rng *rand.Rand) *Annealer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Annealer{
		World:       w,
		Scorer:      Scorer{World: w, BlockPenalty: DefaultBlockPenalty},
		InitialTemp: defaultInitialTemp,
		CoolingRate: defaultCoolingRate,
		rng:         rng,
	}
}

// Repair returns a replacement path from start to goal, seeded by initial
// when non-empty and by a fresh heuristic search otherwise. ok=false when no
// candidate connects start to goal.
func (an *Annealer) Repair(start, goal domain.Position, initial domain.Path) (domain.Path, bool) {
	current := append(domain.Path(nil), initial...)
	if len(current) == 0 {
		seeded, ok := search.NewAStar(an.World, "manhattan").Search(start, goal)
		if !ok {
			return nil, false
		}
		current = seeded
	}
	currentScore := an.Scorer.Score(current)

	best := append(domain.Path(nil), current...)
	bestScore := currentScore

	for temp := an.InitialTemp; temp > 1; temp *= an.CoolingRate {
		neighbor := an.neighbor(current)
		neighborScore := an.Scorer.Score(neighbor)

		if neighborScore < currentScore {
			current, currentScore = neighbor, neighborScore
			if currentScore < bestScore {
				best = append(domain.Path(nil), current...)
				bestScore = currentScore
			}
		} else if an.rng.Float64() < math.Exp(float64(currentScore-neighborScore)/temp) {
			current, currentScore = neighbor, neighborScore
		}
	}

	if len(best) == 0 || best[0] != start || best[len(best)-1] != goal {
		return nil, false
	}
	return best, true
}

// neighbor swaps two randomly chosen interior waypoints. Paths too short to
// have two interior cells are returned unchanged.
func (an *Annealer) neighbor(p domain.Path) domain.Path {
	if len(p) <= 3 {
		return p
	}

	out := append(domain.Path(nil), p...)
	i := 1 + an.rng.Intn(len(p)-2)
	j := 1 + an.rng.Intn(len(p)-2)
	for j == i {
		j = 1 + an.rng.Intn(len(p)-2)
	}
	out[i], out[j] = out[j], out[i]
	return out
}
