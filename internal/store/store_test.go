package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAttemptIncrement(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	count, err := repo.Count(ctx, "u1", "se-debugging-1")
	if err != nil {
		t.Fatalf("count (empty): %v", err)
	}
	if count != 0 {
		t.Fatalf("fresh count = %d, want 0", count)
	}

	for i := 1; i <= 3; i++ {
		got, err := repo.Increment(ctx, "u1", "se-debugging-1")
		if err != nil {
			t.Fatalf("increment %d: %v", i, err)
		}
		if got != i {
			t.Errorf("increment %d returned %d", i, got)
		}
	}

	// Independent per simulation.
	got, err := repo.Increment(ctx, "u1", "cyber-password-1")
	if err != nil {
		t.Fatalf("increment other sim: %v", err)
	}
	if got != 1 {
		t.Errorf("other sim count = %d, want 1", got)
	}

	all, err := repo.ForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("for user: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("ForUser returned %d counters, want 2", len(all))
	}
}

func TestAttemptCounterSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.AttemptRepo().Increment(ctx, "u1", "ds-analysis-1"); err != nil {
		t.Fatalf("increment: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	count, err := s2.AttemptRepo().Count(ctx, "u1", "ds-analysis-1")
	if err != nil {
		t.Fatalf("count after reopen: %v", err)
	}
	if count != 1 {
		t.Errorf("count after reopen = %d, want 1", count)
	}
}

func TestProfileBadgesAndCompletions(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	if err := repo.EnsureUser(ctx, "u1", "Alex"); err != nil {
		t.Fatalf("ensure user: %v", err)
	}

	awarded, err := repo.AwardBadge(ctx, "u1", "Data Analyst", "ds-analysis-1")
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	if !awarded {
		t.Error("first award should report true")
	}

	// Idempotent.
	awarded, err = repo.AwardBadge(ctx, "u1", "Data Analyst", "ds-analysis-1")
	if err != nil {
		t.Fatalf("re-award: %v", err)
	}
	if awarded {
		t.Error("second award should report false")
	}

	first, err := repo.MarkCompleted(ctx, "u1", "ds-analysis-1", 265)
	if err != nil {
		t.Fatalf("mark completed: %v", err)
	}
	if !first {
		t.Error("first completion should report true")
	}
	again, err := repo.MarkCompleted(ctx, "u1", "ds-analysis-1", 300)
	if err != nil {
		t.Fatalf("re-complete: %v", err)
	}
	if again {
		t.Error("repeat completion should report false")
	}

	if err := repo.AddScore(ctx, "u1", 265); err != nil {
		t.Fatalf("add score: %v", err)
	}

	p, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.TotalScore != 265 {
		t.Errorf("total score = %d, want 265", p.TotalScore)
	}
	if !p.HasBadge("Data Analyst") {
		t.Error("profile missing badge")
	}
	if p.HasBadge("Cloud Architect") {
		t.Error("profile has badge it never earned")
	}
	if !p.Completed("ds-analysis-1") {
		t.Error("profile missing completion")
	}
	if len(p.CompletedSimulations) != 1 || p.CompletedSimulations[0].Score != 265 {
		t.Errorf("completions = %+v", p.CompletedSimulations)
	}
}

func TestProfileGetCreatesMissingUser(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p, err := s.ProfileRepo().Get(ctx, "brand-new")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.UserID != "brand-new" || p.TotalScore != 0 {
		t.Errorf("unexpected profile: %+v", p)
	}
}

func TestEventLogOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSubmission(ctx, SubmissionEventData{
		UserID: "u1", SimulationID: "se-debugging-1", QuestionID: "q1",
		Correct: true, ScoreDelta: 100, Attempt: 1,
	}); err != nil {
		t.Fatalf("append submission: %v", err)
	}
	if err := repo.AppendStreak(ctx, StreakEventData{
		UserID: "u1", SimulationID: "se-debugging-1", Milestone: 3,
	}); err != nil {
		t.Fatalf("append streak: %v", err)
	}
	if err := repo.AppendBadge(ctx, BadgeEventData{
		UserID: "u1", SimulationID: "se-debugging-1", Badge: "Debugging Specialist",
	}); err != nil {
		t.Fatalf("append badge: %v", err)
	}

	events, err := repo.Recent(ctx, nil, 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	// Most recent first, sequence strictly decreasing.
	for i := 1; i < len(events); i++ {
		if events[i].Sequence >= events[i-1].Sequence {
			t.Errorf("sequence not decreasing: %d then %d", events[i-1].Sequence, events[i].Sequence)
		}
	}
	if events[0].Type != EventBadge {
		t.Errorf("newest event type = %s, want %s", events[0].Type, EventBadge)
	}

	// Filter by type.
	streaks, err := repo.Recent(ctx, []string{EventStreak}, 10)
	if err != nil {
		t.Fatalf("recent streaks: %v", err)
	}
	if len(streaks) != 1 {
		t.Fatalf("got %d streak events, want 1", len(streaks))
	}
	var data StreakEventData
	if err := json.Unmarshal(streaks[0].Data, &data); err != nil {
		t.Fatalf("unmarshal streak data: %v", err)
	}
	if data.Milestone != 3 {
		t.Errorf("milestone = %d, want 3", data.Milestone)
	}
}
