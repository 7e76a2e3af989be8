package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"delivery-agent-service/internal/ports"
)

// SQLite backed store of simulation run history.
type SqliteRunRepository struct {
	DB *sql.DB
}

func NewSqliteRunRepository(db *sql.DB) *SqliteRunRepository {
	return &SqliteRunRepository{DB: db}
}

// Persist one run record and return its assigned id.
func (s *SqliteRunRepository) SaveRun(ctx context.Context, rec ports.RunRecord) (int64, error) {
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
    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`

	res, err := s.DB.ExecContext(ctx, q,
		rec.MapName,
		rec.Strategy,
		rec.Heuristic,
		rec.DeliveredCount,
		rec.TotalCost,
		rec.TotalTime,
		rec.FuelRemaining,
		rec.PathLength,
		rec.FinalState,
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("save run: insert runs table: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("save run: last insert id: %w", err)
	}

	return id, nil
}

// List the most recent runs, newest first.
func (s *SqliteRunRepository) ListRuns(ctx context.Context, limit int) ([]ports.RunRecord, error) {
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
    LIMIT ?;
	`

	rows, err := s.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: query runs table: %w", err)
	}
	defer rows.Close()

	out := make([]ports.RunRecord, 0, limit)
	for rows.Next() {
		var rec ports.RunRecord
		var createdAt string
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
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("list runs: scan rows: %w", err)
		}

		ts, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("list runs: parse created_at %q: %w", createdAt, err)
		}
		rec.CreatedAt = ts

		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: row iteration: %w", err)
	}

	return out, nil
}
