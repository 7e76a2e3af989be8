// Package agent implements the route orchestrator: it sequences goal visits,
// drives route execution tick by tick, detects obstruction at the moment of
// traversal, and invokes the repair engine when a committed route breaks.
package agent

import (
	"log"
	"math/rand"
	"sort"

	"delivery-agent-service/internal/domain"
	"delivery-agent-service/internal/ports"
	"delivery-agent-service/internal/repair"
	"delivery-agent-service/internal/search"
	"delivery-agent-service/internal/world"
)

// DefaultFuelCapacity is the fuel budget used when none is configured.
const DefaultFuelCapacity = 1000

// ExecState tracks where the agent is in its plan/execute lifecycle.
// Completed and both Stopped states are terminal.
type ExecState int

const (
	StateIdle ExecState = iota
	StatePlanning
	StateExecuting
	StateReplanning
	StateCompleted
	StateStoppedFuel
	StateStoppedBlocked
)

func (s ExecState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlanning:
		return "planning"
	case StateExecuting:
		return "executing"
	case StateReplanning:
		return "replanning"
	case StateCompleted:
		return "completed"
	case StateStoppedFuel:
		return "stopped-fuel-exhausted"
	case StateStoppedBlocked:
		return "stopped-blocked"
	default:
		return "unknown"
	}
}

// Agent plans and executes delivery routes across a grid world. It is the
// sole mutator of its own state and is driven from a single goroutine.
type Agent struct {
	World *world.GridWorld

	fuelCapacity int

	position  domain.Position
	fuel      int
	ticks     int
	delivered map[int]struct{}
	history   []domain.Position
	state     ExecState

	// repairers are tried in order when a route breaks: hill-climbing first,
	// simulated annealing as the fallback.
	repairers []ports.RouteRepairer
}

// New builds an agent positioned at the world's start cell. fuelCapacity <= 0
// selects DefaultFuelCapacity. A nil rng leaves the repairers time-seeded;
// tests inject a fixed one for deterministic repair behavior.
func New(w *world.GridWorld, fuelCapacity int, rng *rand.Rand) *Agent {
	if fuelCapacity <= 0 {
		fuelCapacity = DefaultFuelCapacity
	}
	a := &Agent{
		World:        w,
		fuelCapacity: fuelCapacity,
		repairers: []ports.RouteRepairer{
			repair.NewHillClimber(w, rng),
			repair.NewAnnealer(w, rng),
		},
	}
	a.Reset()
	return a
}

func (a *Agent) Position() domain.Position { return a.position }
func (a *Agent) Fuel() int                 { return a.fuel }
func (a *Agent) Ticks() int                { return a.ticks }
func (a *Agent) State() ExecState          { return a.state }

// Delivered returns the delivered package ids in ascending order.
func (a *Agent) Delivered() []int {
	ids := make([]int, 0, len(a.delivered))
	for id := range a.delivered {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// PlanRoute assembles a route visiting every undelivered package with a
// greedy nearest-goal pass: from the current planning cursor, search to each
// remaining destination and commit the shortest returned path. Ties break on
// the lower package id so planning is deterministic. The result is an
// intentional approximation, not an optimal tour; planning stops early when
// no remaining package is reachable from the cursor. A nil route means no
// package could be routed at all.
func (a *Agent) PlanRoute(strategy, heuristic string) domain.Route {
	if len(a.World.Packages) == 0 {
		return nil
	}
	a.state = StatePlanning
	defer func() { a.state = StateIdle }()

	remaining := make(map[int]domain.Position, len(a.World.Packages))
	for id, dest := range a.World.Packages {
		if _, done := a.delivered[id]; !done {
			remaining[id] = dest
		}
	}

	route := domain.Route{a.position}
	cursor := a.position
	routed := false

	for len(remaining) > 0 {
		ids := make([]int, 0, len(remaining))
		for id := range remaining {
			ids = append(ids, id)
		}
		sort.Ints(ids)

		bestID := -1
		var bestPath domain.Path
		for _, id := range ids {
			finder := search.ByName(strategy, heuristic, a.World)
			path, ok := finder.Search(cursor, remaining[id])
			if !ok {
				continue
			}
			if bestID == -1 || len(path) < len(bestPath) {
				bestID, bestPath = id, path
			}
		}

		if bestID == -1 {
			// Nothing left is reachable; return what was assembled so far.
			break
		}

		route = append(route, bestPath[1:]...)
		cursor = remaining[bestID]
		delete(remaining, bestID)
		routed = true
	}

	if !routed {
		return nil
	}
	return route
}

// ExecuteRoute walks the route one cell per tick, up to maxSteps moves.
// Before each step the next cell is checked for obstruction at the current
// tick; on obstruction the repairers are tried in order on the remaining
// suffix and a successful replacement is spliced in. Execution stops when
// the next step's cost exceeds the remaining fuel, when no repairer can
// patch the route, or when the route (or step budget) is exhausted.
func (a *Agent) ExecuteRoute(route domain.Route, maxSteps int) domain.DeliveryStatus {
	a.state = StateExecuting

	steps := 0
	for i := 1; i < len(route) && steps < maxSteps; i++ {
		next := route[i]

		if a.World.IsBlocked(next, a.ticks) {
			log.Printf("agent: obstruction cell=(%d,%d) tick=%d, replanning", next.X, next.Y, a.ticks)
			a.state = StateReplanning

			patched, ok := a.repairSuffix(route[i-1:])
			if !ok {
				log.Printf("agent: replanning failed, stopping")
				a.state = StateStoppedBlocked
				return a.status()
			}

			spliced := make(domain.Route, 0, i-1+len(patched))
			spliced = append(spliced, route[:i-1]...)
			spliced = append(spliced, patched...)
			route = spliced
			a.state = StateExecuting

			if i >= len(route) {
				break
			}
			next = route[i]
		}

		cost := a.World.TerrainCost(next)
		if cost > a.fuel {
			log.Printf("agent: out of fuel tick=%d fuel=%d cost=%d", a.ticks, a.fuel, cost)
			a.state = StateStoppedFuel
			return a.status()
		}

		a.position = next
		a.fuel -= cost
		a.ticks++
		steps++
		a.history = append(a.history, next)

		for id, dest := range a.World.Packages {
			if dest != next {
				continue
			}
			if _, done := a.delivered[id]; done {
				continue
			}
			a.delivered[id] = struct{}{}
			log.Printf("agent: delivered package=%d cell=(%d,%d) tick=%d", id, next.X, next.Y, a.ticks)
		}
	}

	a.state = StateCompleted
	return a.status()
}

// repairSuffix asks each repairer in turn for a replacement of the broken
// suffix. The suffix's first element is the last cell the agent occupied,
// its last the suffix's ultimate destination.
func (a *Agent) repairSuffix(suffix domain.Route) (domain.Path, bool) {
	if len(suffix) < 2 {
		return nil, false
	}
	start, goal := suffix[0], suffix[len(suffix)-1]

	for _, r := range a.repairers {
		if patched, ok := r.Repair(start, goal, domain.Path(suffix)); ok {
			return patched, true
		}
	}
	return nil, false
}

// Reset returns the agent to its initial state: start cell, full fuel, zero
// elapsed time, nothing delivered.
func (a *Agent) Reset() {
	a.position = a.World.Start
	a.fuel = a.fuelCapacity
	a.ticks = 0
	a.delivered = make(map[int]struct{})
	a.history = []domain.Position{a.World.Start}
	a.state = StateIdle
}

func (a *Agent) status() domain.DeliveryStatus {
	total := 0
	for _, p := range a.history[1:] {
		total += a.World.TerrainCost(p)
	}
	return domain.DeliveryStatus{
		Delivered:     a.Delivered(),
		TotalCost:     total,
		TotalTime:     a.ticks,
		Path:          append([]domain.Position(nil), a.history...),
		FuelRemaining: a.fuel,
	}
}
