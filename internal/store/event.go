package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event types recorded in the log.
const (
	EventSubmission     = "submission"
	EventStreak         = "streak"
	EventBadge          = "badge"
	EventGradingRequest = "grading_request"
)

// Event is one row of the append-only event log.
type Event struct {
	ID        string
	Sequence  int64
	Type      string
	Data      json.RawMessage
	CreatedAt time.Time
}

// SubmissionEventData records one graded submission.
type SubmissionEventData struct {
	UserID       string `json:"user_id"`
	SimulationID string `json:"simulation_id"`
	QuestionID   string `json:"question_id,omitempty"`
	Batch        bool   `json:"batch"`
	Correct      bool   `json:"correct"`
	ScoreDelta   int    `json:"score_delta"`
	HintsUsed    int    `json:"hints_used"`
	Attempt      int    `json:"attempt"`
}

// StreakEventData records a streak milestone celebration.
type StreakEventData struct {
	UserID       string `json:"user_id"`
	SimulationID string `json:"simulation_id"`
	Milestone    int    `json:"milestone"`
}

// BadgeEventData records a badge award.
type BadgeEventData struct {
	UserID       string `json:"user_id"`
	SimulationID string `json:"simulation_id"`
	Badge        string `json:"badge"`
}

// GradingRequestEventData records one grader call, successful or not.
type GradingRequestEventData struct {
	Provider     string `json:"provider"`
	Model        string `json:"model"`
	Purpose      string `json:"purpose"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
	LatencyMs    int64  `json:"latency_ms"`
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error_message,omitempty"`
	RequestBody  string `json:"request_body,omitempty"`
	ResponseBody string `json:"response_body,omitempty"`
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	AppendSubmission(ctx context.Context, data SubmissionEventData) error
	AppendStreak(ctx context.Context, data StreakEventData) error
	AppendBadge(ctx context.Context, data BadgeEventData) error
	AppendGradingRequest(ctx context.Context, data GradingRequestEventData) error

	// Recent returns the newest events of the given types, most recent
	// first. An empty type list matches everything.
	Recent(ctx context.Context, types []string, limit int) ([]Event, error)
}

type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendSubmission(ctx context.Context, data SubmissionEventData) error {
	return r.append(ctx, EventSubmission, data)
}

func (r *eventRepo) AppendStreak(ctx context.Context, data StreakEventData) error {
	return r.append(ctx, EventStreak, data)
}

func (r *eventRepo) AppendBadge(ctx context.Context, data BadgeEventData) error {
	return r.append(ctx, EventBadge, data)
}

func (r *eventRepo) AppendGradingRequest(ctx context.Context, data GradingRequestEventData) error {
	return r.append(ctx, EventGradingRequest, data)
}

func (r *eventRepo) append(ctx context.Context, eventType string, data any) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", eventType, err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO events (id, sequence, type, data, created_at) VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), seqNum, eventType, string(payload),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save %s event: %w", eventType, err)
	}
	return nil
}

func (r *eventRepo) Recent(ctx context.Context, types []string, limit int) ([]Event, error) {
	query := `SELECT id, sequence, type, data, created_at FROM events`
	args := make([]any, 0, len(types)+1)

	if len(types) > 0 {
		query += ` WHERE type IN (`
		for i, t := range types {
			if i > 0 {
				query += `, `
			}
			query += `?`
			args = append(args, t)
		}
		query += `)`
	}

	query += ` ORDER BY sequence DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			e       Event
			data    string
			created string
		)
		if err := rows.Scan(&e.ID, &e.Sequence, &e.Type, &data, &created); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Data = json.RawMessage(data)
		if t, err := time.Parse(time.RFC3339Nano, created); err == nil {
			e.CreatedAt = t
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
