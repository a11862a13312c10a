package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Badge is one earned skill badge.
type Badge struct {
	Name         string
	SimulationID string
	EarnedAt     time.Time
}

// Completion records a finalized simulation and its score.
type Completion struct {
	SimulationID string
	Score        int
	CompletedAt  time.Time
}

// Profile is the authoritative durable record for a user.
type Profile struct {
	UserID               string
	Name                 string
	TotalScore           int
	SkillBadges          []Badge
	CompletedSimulations []Completion
}

// HasBadge reports whether the profile already carries the named badge.
func (p *Profile) HasBadge(name string) bool {
	for _, b := range p.SkillBadges {
		if b.Name == name {
			return true
		}
	}
	return false
}

// Completed reports whether the simulation has been finalized before.
func (p *Profile) Completed(simulationID string) bool {
	for _, c := range p.CompletedSimulations {
		if c.SimulationID == simulationID {
			return true
		}
	}
	return false
}

// ProfileRepo manages users, badges, completions, and scores.
type ProfileRepo interface {
	// EnsureUser creates the user row if it doesn't exist.
	EnsureUser(ctx context.Context, userID, name string) error

	// Get returns the full profile. The user is created if missing.
	Get(ctx context.Context, userID string) (*Profile, error)

	// AddScore adds delta to the user's lifetime score.
	AddScore(ctx context.Context, userID string, delta int) error

	// AwardBadge inserts the badge if the user doesn't already hold it.
	// Returns true when the badge was newly awarded.
	AwardBadge(ctx context.Context, userID, badge, simulationID string) (bool, error)

	// MarkCompleted records a finalized simulation. Re-finalizing keeps
	// the first completion and returns false.
	MarkCompleted(ctx context.Context, userID, simulationID string, score int) (bool, error)
}

type profileRepo struct {
	db *sql.DB
}

func (r *profileRepo) EnsureUser(ctx context.Context, userID, name string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO NOTHING`,
		userID, name, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}
	return nil
}

func (r *profileRepo) Get(ctx context.Context, userID string) (*Profile, error) {
	p := &Profile{UserID: userID}

	err := r.db.QueryRowContext(ctx,
		`SELECT name, total_score FROM users WHERE id = ?`, userID,
	).Scan(&p.Name, &p.TotalScore)
	if errors.Is(err, sql.ErrNoRows) {
		if err := r.EnsureUser(ctx, userID, ""); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	badgeRows, err := r.db.QueryContext(ctx,
		`SELECT badge, simulation_id, earned_at FROM badges WHERE user_id = ? ORDER BY earned_at`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("load badges: %w", err)
	}
	defer badgeRows.Close()
	for badgeRows.Next() {
		var (
			b  Badge
			at string
		)
		if err := badgeRows.Scan(&b.Name, &b.SimulationID, &at); err != nil {
			return nil, fmt.Errorf("scan badge: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, at); err == nil {
			b.EarnedAt = t
		}
		p.SkillBadges = append(p.SkillBadges, b)
	}
	if err := badgeRows.Err(); err != nil {
		return nil, err
	}

	compRows, err := r.db.QueryContext(ctx,
		`SELECT simulation_id, score, completed_at FROM completions WHERE user_id = ? ORDER BY completed_at`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("load completions: %w", err)
	}
	defer compRows.Close()
	for compRows.Next() {
		var (
			c  Completion
			at string
		)
		if err := compRows.Scan(&c.SimulationID, &c.Score, &at); err != nil {
			return nil, fmt.Errorf("scan completion: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, at); err == nil {
			c.CompletedAt = t
		}
		p.CompletedSimulations = append(p.CompletedSimulations, c)
	}
	return p, compRows.Err()
}

func (r *profileRepo) AddScore(ctx context.Context, userID string, delta int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET total_score = total_score + ? WHERE id = ?`, delta, userID)
	if err != nil {
		return fmt.Errorf("add score: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("add score: user %s not found", userID)
	}
	return nil
}

func (r *profileRepo) AwardBadge(ctx context.Context, userID, badge, simulationID string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO badges (user_id, badge, simulation_id, earned_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(user_id, badge) DO NOTHING`,
		userID, badge, simulationID, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return false, fmt.Errorf("award badge: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *profileRepo) MarkCompleted(ctx context.Context, userID, simulationID string, score int) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO completions (user_id, simulation_id, score, completed_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(user_id, simulation_id) DO NOTHING`,
		userID, simulationID, score, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return false, fmt.Errorf("mark completed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
