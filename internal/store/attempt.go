package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// AttemptCount is the durable attempt counter for one (user, simulation)
// pair. It only ever increments; switching simulations or restarting the
// process never resets it.
type AttemptCount struct {
	UserID       string
	SimulationID string
	Count        int
	UpdatedAt    time.Time
}

// AttemptRepo manages durable attempt counters.
type AttemptRepo interface {
	// Increment bumps the counter and returns the new value.
	Increment(ctx context.Context, userID, simulationID string) (int, error)

	// Count returns the current counter, 0 if none recorded.
	Count(ctx context.Context, userID, simulationID string) (int, error)

	// ForUser returns all counters for a user.
	ForUser(ctx context.Context, userID string) ([]AttemptCount, error)
}

type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) Increment(ctx context.Context, userID, simulationID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO attempts (user_id, simulation_id, count, updated_at) VALUES (?, ?, 1, ?)
		 ON CONFLICT(user_id, simulation_id) DO UPDATE SET count = count + 1, updated_at = excluded.updated_at
		 RETURNING count`,
		userID, simulationID, time.Now().UTC().Format(time.RFC3339),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("increment attempt: %w", err)
	}
	return count, nil
}

func (r *attemptRepo) Count(ctx context.Context, userID, simulationID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT count FROM attempts WHERE user_id = ? AND simulation_id = ?`,
		userID, simulationID,
	).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load attempt count: %w", err)
	}
	return count, nil
}

func (r *attemptRepo) ForUser(ctx context.Context, userID string) ([]AttemptCount, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, simulation_id, count, updated_at FROM attempts WHERE user_id = ? ORDER BY simulation_id`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}
	defer rows.Close()

	var out []AttemptCount
	for rows.Next() {
		var (
			a  AttemptCount
			at string
		)
		if err := rows.Scan(&a.UserID, &a.SimulationID, &a.Count, &at); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, at); err == nil {
			a.UpdatedAt = t
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
