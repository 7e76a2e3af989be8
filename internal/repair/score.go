// Package repair implements the randomized local-search optimizers used to
// patch a committed route after an obstruction is detected: restart
// hill-climbing and simulated annealing. Both share one scoring function.
package repair

import (
	"math"

	"delivery-agent-service/internal/domain"
	"delivery-agent-service/internal/world"
)

// DefaultBlockPenalty is added to a candidate's score for every step whose
// cell is predicted blocked.
const DefaultBlockPenalty = 1000

// Scorer evaluates candidate repair paths; lower is better. The score is the
// terrain cost of every step after the first, plus BlockPenalty per step
// whose cell is blocked at the step's candidate-local time (the candidate's
// clock starts at 0 and advances one tick per step, independent of the
// agent's absolute time).
//
// Both optimizers share this scorer, penalty included: a repair exists to
// route around blockage, so a candidate crossing a predicted obstacle must
// score worse than one that does not.
type Scorer struct {
	World        *world.GridWorld
	BlockPenalty int
}

// Score returns the candidate's score. An empty path scores MaxInt so any
// real candidate beats it.
func (s Scorer) Score(p domain.Path) int {
	if len(p) == 0 {
		return math.MaxInt
	}

	total := 0
	t := 0
	for i := 1; i < len(p); i++ {
		total += s.World.TerrainCost(p[i])
		if s.BlockPenalty > 0 && s.World.IsBlocked(p[i], t) {
			total += s.BlockPenalty
		}
		t++
	}
	return total
}
