package search

import (
	"math"
	"strings"

	"delivery-agent-service/internal/domain"
)

// Heuristic estimates the remaining cost between two cells. All provided
// heuristics are admissible on a grid whose minimum terrain cost is 1.
type Heuristic func(a, b domain.Position) float64

// Manhattan is |dx| + |dy|.
func Manhattan(a, b domain.Position) float64 {
	return float64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

// Euclidean is the straight-line distance.
func Euclidean(a, b domain.Position) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Chebyshev is max(|dx|, |dy|).
func Chebyshev(a, b domain.Position) float64 {
	return float64(max(abs(a.X-b.X), abs(a.Y-b.Y)))
}

// HeuristicByName resolves a heuristic name. Unknown names evaluate to the
// zero heuristic, degrading A* to uniform-cost behavior.
func HeuristicByName(name string) Heuristic {
	switch strings.ToLower(name) {
	case "manhattan":
		return Manhattan
	case "euclidean":
		return Euclidean
	case "chebyshev":
		return Chebyshev
	default:
		return func(domain.Position, domain.Position) float64 { return 0 }
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
