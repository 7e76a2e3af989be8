package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"

	"delivery-agent-service/internal/adapters/mapfile"
	"delivery-agent-service/internal/agent"
	"delivery-agent-service/internal/domain"
	"delivery-agent-service/internal/platform/obs"
	"delivery-agent-service/internal/ports"
)

const (
	DefaultMaxSteps = 1000

	defaultStrategy  = "astar"
	defaultHeuristic = "manhattan"
)

type RunSimulationRequest struct {
	MapPath      string
	Strategy     string
	Heuristic    string
	FuelCapacity int
	MaxSteps     int
	// Seed fixes the repair engines' randomness; 0 leaves them time-seeded.
	Seed int64
}

// SimulationResult is the outcome of one planned-and-executed delivery run.
type SimulationResult struct {
	MapName       string
	Strategy      string
	Heuristic     string
	TotalPackages int
	PlannedSteps  int
	FinalState    string
	Status        domain.DeliveryStatus
	// RunID is set when the run was persisted.
	RunID int64
}

// RunSimulation loads a map, plans a delivery route over it, executes the
// route, and persists the outcome. A nil repo skips persistence (CLI dry
// runs).
func RunSimulation(ctx context.Context, req RunSimulationRequest, repo ports.RunRepository) (_ *SimulationResult, err error) {
	defer obs.Time(ctx, "services.RunSimulation")(&err)

	if req.Strategy == "" {
		req.Strategy = defaultStrategy
	}
	if req.Heuristic == "" {
		req.Heuristic = defaultHeuristic
	}
	if req.MaxSteps <= 0 {
		req.MaxSteps = DefaultMaxSteps
	}

	w, err := mapfile.Load(req.MapPath)
	if err != nil {
		return nil, fmt.Errorf("run simulation: %w", err)
	}

	var rng *rand.Rand
	if req.Seed != 0 {
		rng = rand.New(rand.NewSource(req.Seed))
	}

	ag := agent.New(w, req.FuelCapacity, rng)

	route := ag.PlanRoute(req.Strategy, req.Heuristic)
	if len(route) == 0 {
		return nil, errors.New("run simulation: no route could be planned")
	}

	status := ag.ExecuteRoute(route, req.MaxSteps)

	res := &SimulationResult{
		MapName:       filepath.Base(req.MapPath),
		Strategy:      req.Strategy,
		Heuristic:     req.Heuristic,
		TotalPackages: len(w.Packages),
		PlannedSteps:  len(route) - 1,
		FinalState:    ag.State().String(),
		Status:        status,
	}

	if repo != nil {
		rec := ports.RunRecord{
			MapName:        res.MapName,
			Strategy:       req.Strategy,
			Heuristic:      req.Heuristic,
			DeliveredCount: len(status.Delivered),
			TotalCost:      status.TotalCost,
			TotalTime:      status.TotalTime,
			FuelRemaining:  status.FuelRemaining,
			PathLength:     len(status.Path),
			FinalState:     res.FinalState,
		}

		id, err := repo.SaveRun(ctx, rec)
		if err != nil {
			return nil, fmt.Errorf("run simulation: save run: %w", err)
		}
		res.RunID = id
	}

	return res, nil
}
