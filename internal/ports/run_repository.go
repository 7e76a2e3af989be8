package ports

import (
	"context"
	"time"
)

// RunRecord is one persisted simulation outcome.
type RunRecord struct {
	RunID          int64
	MapName        string
	Strategy       string
	Heuristic      string
	DeliveredCount int
	TotalCost      int
	TotalTime      int
	FuelRemaining  int
	PathLength     int
	FinalState     string
	CreatedAt      time.Time
}

// Port: a boundary for persisting and listing simulation runs.
type RunRepository interface {
	// Persist one run and return its assigned id.
	SaveRun(ctx context.Context, rec RunRecord) (int64, error)
	// List the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]RunRecord, error)
}
