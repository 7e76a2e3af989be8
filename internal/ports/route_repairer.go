package ports

import "delivery-agent-service/internal/domain"

// RouteRepairer patches a committed route suffix after an obstruction is
// detected at execution time.
type RouteRepairer interface {
	// Repair returns a replacement sequence from start to goal, seeded by the
	// given path when non-empty. ok=false signals that no usable replacement
	// was found; a returned path is never empty.
	Repair(start, goal domain.Position, initial domain.Path) (path domain.Path, ok bool)
}
