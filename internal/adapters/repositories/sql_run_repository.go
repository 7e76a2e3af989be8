package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"delivery-agent-service/internal/platform/obs"
	"delivery-agent-service/internal/ports"
)

// SQLRunRepository is a Postgres-backed store of simulation run history.
type SQLRunRepository struct {
	DB *sql.DB
}

func NewSQLRunRepository(db *sql.DB) *SQLRunRepository {
	return &SQLRunRepository{DB: db}
}

// Persist one run record and return its assigned id.
func (s *SQLRunRepository) SaveRun(ctx context.Context, rec ports.RunRecord) (_ int64, err error) {
	defer obs.Time(ctx, "runs.repo.SaveRun")(&err)

	if s.DB == nil {
		return 0, errors.New("run repository: db is nil")
	}

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	q := `
	INSERT INTO runs (
        map_name,
        strategy,
        heuristic,
        delivered_count,
        total_cost,
        total_time,
        fuel_remaining,
        path_length,
        final_state,
        created_at
    )
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING run_id;
	`

	var id int64
	if err := s.DB.QueryRowContext(ctx, q,
		rec.MapName,
		rec.Strategy,
		rec.Heuristic,
		rec.DeliveredCount,
		rec.TotalCost,
		rec.TotalTime,
		rec.FuelRemaining,
		rec.PathLength,
		rec.FinalState,
		createdAt,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("save run: insert runs table: %w", err)
	}

	return id, nil
}

// List the most recent runs, newest first.
func (s *SQLRunRepository) ListRuns(ctx context.Context, limit int) (_ []ports.RunRecord, err error) {
	defer obs.Time(ctx, "runs.repo.ListRuns")(&err)

	if s.DB == nil {
		return nil, errors.New("run repository: db is nil")
	}

	if limit <= 0 {
		limit = 20
	}

	q := `
	SELECT
        run_id,
        map_name,
        strategy,
        heuristic,
        delivered_count,
        total_cost,
        total_time,
        fuel_remaining,
        path_length,
        final_state,
        created_at
    FROM runs
    ORDER BY run_id DESC
    LIMIT $1;
	`

	rows, err := s.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: query runs table: %w", err)
	}
	defer rows.Close()

	out := make([]ports.RunRecord, 0, limit)
	for rows.Next() {
		var rec ports.RunRecord
		if err := rows.Scan(
			&rec.RunID,
			&rec.MapName,
			&rec.Strategy,
			&rec.Heuristic,
			&rec.DeliveredCount,
			&rec.TotalCost,
			&rec.TotalTime,
			&rec.FuelRemaining,
			&rec.PathLength,
			&rec.FinalState,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("list runs: scan rows: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: row iteration: %w", err)
	}

	return out, nil
}
