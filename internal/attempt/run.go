// Package attempt drives a simulation playthrough: grading submissions,
// applying score deltas, feeding the streak monitor, and finalizing the
// run into the durable profile.
package attempt

import (
	"time"

	"github.com/Rakshit-11/CareerFinder/internal/catalog"
	"github.com/Rakshit-11/CareerFinder/internal/grader"
	"github.com/Rakshit-11/CareerFinder/internal/streak"
)

// Status is the lifecycle state of a run.
type Status int

const (
	StatusNotStarted Status = iota // No graded submission yet
	StatusInProgress               // At least one graded submission
	StatusFinalized                // All questions correct, run closed
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusInProgress:
		return "in_progress"
	case StatusFinalized:
		return "finalized"
	}
	return "unknown"
}

// QuestionState tracks one question's progress within a run.
type QuestionState struct {
	// QuestionID identifies the question in the simulation.
	QuestionID string

	// Answer is the most recent graded answer.
	Answer string

	// Correct locks the question once a graded submission passes.
	Correct bool

	// Attempts counts graded submissions of this question in this run.
	Attempts int

	// HintsRevealed counts hints shown, in order. Revealing the same
	// hint twice is impossible; each reveal exposes the next one.
	HintsRevealed int

	// Feedback is the grader's most recent per-question feedback.
	Feedback string
}

// Run is the in-memory state of one simulation playthrough. Switching
// simulations discards the run; only the attempt counter in the store
// survives.
type Run struct {
	Simulation *catalog.Simulation
	UserID     string
	Status     Status

	// Score is the run-local score. It accumulates deltas for correct
	// answers and loses 5 per hint reveal, never dropping below 0.
	Score int

	// Streak watches consecutive correct answers for milestone events.
	Streak *streak.Monitor

	// Questions holds per-question progress keyed by question ID.
	Questions map[string]*QuestionState

	// DurableAttempts mirrors the store's attempt counter for this
	// (user, simulation) pair. Loaded at start, updated after bumps.
	DurableAttempts int

	// LastMilestone is the streak milestone fired by the most recent
	// submission, 0 when none fired.
	LastMilestone int

	// StartedAt is when the run began.
	StartedAt time.Time
}

func newRun(userID string, sim *catalog.Simulation, durableAttempts int) *Run {
	questions := make(map[string]*QuestionState, len(sim.Questions))
	for _, q := range sim.Questions {
		questions[q.ID] = &QuestionState{QuestionID: q.ID}
	}
	return &Run{
		Simulation:      sim,
		UserID:          userID,
		Status:          StatusNotStarted,
		Streak:          streak.NewMonitor(),
		Questions:       questions,
		DurableAttempts: durableAttempts,
		StartedAt:       time.Now(),
	}
}

// Question returns the state for a question ID, nil if unknown.
func (r *Run) Question(questionID string) *QuestionState {
	return r.Questions[questionID]
}

// CorrectCount returns how many questions are answered correctly.
func (r *Run) CorrectCount() int {
	n := 0
	for _, qs := range r.Questions {
		if qs.Correct {
			n++
		}
	}
	return n
}

// AllCorrect reports whether every question in the simulation has been
// answered correctly.
func (r *Run) AllCorrect() bool {
	return r.CorrectCount() == len(r.Simulation.Questions)
}

// answerBatch builds the current in-memory answer set in question order,
// used as the finalization submission.
func (r *Run) answerBatch() []grader.Answer {
	batch := make([]grader.Answer, 0, len(r.Simulation.Questions))
	for _, q := range r.Simulation.Questions {
		qs := r.Questions[q.ID]
		if qs.Answer == "" {
			continue
		}
		batch = append(batch, grader.Answer{QuestionID: q.ID, Answer: qs.Answer})
	}
	return batch
}
