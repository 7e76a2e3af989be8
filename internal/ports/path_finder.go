package ports

import "delivery-agent-service/internal/domain"

// PathFinder is the contract shared by the exhaustive search strategies.
type PathFinder interface {
	// Search returns a path whose first cell is start and last cell is goal,
	// or ok=false when the goal is unreachable. Unreachable is a normal
	// outcome, not an error.
	Search(start, goal domain.Position) (path domain.Path, ok bool)
	// NodesExpanded reports how many nodes the most recent Search expanded,
	// for benchmarking by external callers.
	NodesExpanded() int
}
