// Package search implements the exhaustive path search strategies over a
// grid world: breadth-first, uniform-cost, and heuristic (A*) search. All
// three share one expansion contract (see node.go) and report how many nodes
// they expanded for benchmarking.
package search

import (
	"strings"

	"delivery-agent-service/internal/ports"
	"delivery-agent-service/internal/world"
)

// Strategy names accepted by ByName.
const (
	StrategyBFS   = "bfs"
	StrategyUCS   = "ucs"
	StrategyAStar = "astar"
)

// ByName returns the search strategy for a name. Unknown names fall back to
// A* with the given heuristic.
func ByName(strategy, heuristic string, w *world.GridWorld) ports.PathFinder {
	switch strings.ToLower(strategy) {
	case StrategyBFS:
		return NewBFS(w)
	case StrategyUCS:
		return NewUniformCost(w)
	default:
		return NewAStar(w, heuristic)
	}
}
