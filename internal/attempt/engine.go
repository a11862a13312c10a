package attempt

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Rakshit-11/CareerFinder/internal/badges"
	"github.com/Rakshit-11/CareerFinder/internal/catalog"
	"github.com/Rakshit-11/CareerFinder/internal/grader"
	"github.com/Rakshit-11/CareerFinder/internal/scoring"
	"github.com/Rakshit-11/CareerFinder/internal/store"
)

// Engine grades submissions and moves a run through its lifecycle.
type Engine struct {
	grader      grader.Grader
	profileRepo store.ProfileRepo
	attemptRepo store.AttemptRepo
	eventRepo   store.EventRepo
	issuer      *badges.Issuer
}

// NewEngine creates a progression engine.
func NewEngine(g grader.Grader, profileRepo store.ProfileRepo, attemptRepo store.AttemptRepo, eventRepo store.EventRepo, issuer *badges.Issuer) *Engine {
	return &Engine{
		grader:      g,
		profileRepo: profileRepo,
		attemptRepo: attemptRepo,
		eventRepo:   eventRepo,
		issuer:      issuer,
	}
}

// SubmitResult is the outcome of a single-question submission.
type SubmitResult struct {
	Correct    bool
	Feedback   string
	ScoreDelta int

	// Milestone is the streak milestone this submission fired, 0 if none.
	Milestone int

	// ReadyToFinalize is set when every question is now correct and the
	// finalization submission should follow.
	ReadyToFinalize bool
}

// SubmitAllResult is the outcome of a manual batch submission.
type SubmitAllResult struct {
	Result   *grader.Result
	Finalize *FinalizeOutcome
}

// FinalizeOutcome carries everything the summary screen shows after a
// run closes.
type FinalizeOutcome struct {
	Score   int
	Summary string

	// BadgeAward is non-nil when the completion granted a new badge.
	BadgeAward *badges.Award

	// Profile is the authoritative record re-fetched from the store
	// after finalization, nil when the refresh failed.
	Profile *store.Profile
}

// Start begins a fresh run for the user and simulation. Any previous
// run state is discarded; the durable attempt counter carries over.
func (e *Engine) Start(ctx context.Context, userID, simulationID string) (*Run, error) {
	sim := catalog.ByID(simulationID)
	if sim == nil {
		return nil, fmt.Errorf("unknown simulation %q", simulationID)
	}
	if err := e.profileRepo.EnsureUser(ctx, userID, ""); err != nil {
		return nil, fmt.Errorf("ensure user: %w", err)
	}
	attempts, err := e.attemptRepo.Count(ctx, userID, simulationID)
	if err != nil {
		return nil, fmt.Errorf("load attempt count: %w", err)
	}
	e.issuer.ResetSession()
	return newRun(userID, sim, attempts), nil
}

// SubmitQuestion grades a single answer. Validation failures and grader
// errors leave the run untouched; a graded verdict updates score,
// streak, and the durable attempt counter.
func (e *Engine) SubmitQuestion(ctx context.Context, run *Run, questionID, answer string) (*SubmitResult, error) {
	if run.Status == StatusFinalized {
		return nil, ErrFinalized
	}
	qs := run.Question(questionID)
	if qs == nil {
		return nil, ErrUnknownQuestion
	}

	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return nil, &grader.ValidationError{Field: questionID, Message: "Answer cannot be empty"}
	}
	if qs.Correct {
		return nil, ErrAlreadyCorrect
	}

	res, err := e.grader.GradeBatch(ctx, run.Simulation, []grader.Answer{{QuestionID: questionID, Answer: trimmed}})
	if err != nil {
		return nil, err
	}
	if len(res.PerQuestion) != 1 {
		return nil, &grader.ErrMalformedResponse{Err: fmt.Errorf("expected 1 verdict, got %d", len(res.PerQuestion))}
	}

	run.Status = StatusInProgress
	e.bumpAttempt(ctx, run)

	verdict := res.PerQuestion[0]
	qs.Attempts++
	qs.Answer = trimmed
	qs.Correct = verdict.Correct
	qs.Feedback = verdict.Feedback

	// The retry penalty keys off the durable counter, which includes
	// attempts from earlier sessions and was just bumped for this one.
	delta := scoring.ComputeDelta(verdict.Correct, qs.HintsRevealed, run.DurableAttempts)
	run.Score += delta

	run.LastMilestone = run.Streak.Record(verdict.Correct)
	if run.LastMilestone > 0 {
		e.logStreak(ctx, run, run.LastMilestone)
	}
	e.logSubmission(ctx, run, store.SubmissionEventData{
		UserID:       run.UserID,
		SimulationID: run.Simulation.ID,
		QuestionID:   questionID,
		Correct:      verdict.Correct,
		ScoreDelta:   delta,
		HintsUsed:    qs.HintsRevealed,
		Attempt:      qs.Attempts,
	})

	return &SubmitResult{
		Correct:         verdict.Correct,
		Feedback:        verdict.Feedback,
		ScoreDelta:      delta,
		Milestone:       run.LastMilestone,
		ReadyToFinalize: run.AllCorrect(),
	}, nil
}

// SubmitAll grades a batch of answers at once and finalizes the run
// when the batch verdict is all-correct.
func (e *Engine) SubmitAll(ctx context.Context, run *Run, answers []grader.Answer) (*SubmitAllResult, error) {
	if run.Status == StatusFinalized {
		return nil, ErrFinalized
	}
	var empty []string
	for _, a := range answers {
		if strings.TrimSpace(a.Answer) == "" {
			empty = append(empty, a.QuestionID)
		}
	}
	if len(empty) > 0 {
		return nil, &grader.ValidationError{
			Field:   strings.Join(empty, ", "),
			Message: fmt.Sprintf("Answer cannot be empty: %s", strings.Join(empty, ", ")),
		}
	}

	res, err := e.grader.GradeBatch(ctx, run.Simulation, answers)
	if err != nil {
		return nil, err
	}

	run.Status = StatusInProgress
	e.bumpAttempt(ctx, run)

	for _, verdict := range res.PerQuestion {
		qs := run.Question(verdict.QuestionID)
		if qs == nil {
			continue
		}
		wasCorrect := qs.Correct
		qs.Answer = verdict.Answer
		qs.Feedback = verdict.Feedback

		if wasCorrect {
			// Already locked correct; the batch re-includes it but the
			// score and streak were settled earlier.
			continue
		}
		qs.Attempts++
		qs.Correct = verdict.Correct

		delta := scoring.ComputeDelta(verdict.Correct, qs.HintsRevealed, run.DurableAttempts)
		run.Score += delta

		run.LastMilestone = run.Streak.Record(verdict.Correct)
		if run.LastMilestone > 0 {
			e.logStreak(ctx, run, run.LastMilestone)
		}
		e.logSubmission(ctx, run, store.SubmissionEventData{
			UserID:       run.UserID,
			SimulationID: run.Simulation.ID,
			QuestionID:   verdict.QuestionID,
			Batch:        true,
			Correct:      verdict.Correct,
			ScoreDelta:   delta,
			HintsUsed:    qs.HintsRevealed,
			Attempt:      qs.Attempts,
		})
	}

	out := &SubmitAllResult{Result: res}
	if res.AllCorrect && run.AllCorrect() {
		out.Finalize = e.finalize(ctx, run, res.Feedback)
	}
	return out, nil
}

// FinalizeIfComplete submits the run's in-memory answers as the
// finalization batch once every question is correct. A grader failure
// here is retryable: the run stays in progress and the caller may try
// again.
func (e *Engine) FinalizeIfComplete(ctx context.Context, run *Run) (*FinalizeOutcome, error) {
	if run.Status == StatusFinalized {
		return nil, ErrFinalized
	}
	if !run.AllCorrect() {
		return nil, nil
	}

	res, err := e.grader.GradeBatch(ctx, run.Simulation, run.answerBatch())
	if err != nil {
		return nil, err
	}
	return e.finalize(ctx, run, res.Feedback), nil
}

// RevealHint exposes the next unrevealed hint for the question and
// applies the score penalty. Hints reveal in order; a hint already
// revealed is never charged again.
func (e *Engine) RevealHint(run *Run, questionID string) (string, error) {
	if run.Status == StatusFinalized {
		return "", ErrFinalized
	}
	qs := run.Question(questionID)
	if qs == nil {
		return "", ErrUnknownQuestion
	}
	if qs.Correct {
		return "", ErrAlreadyCorrect
	}
	q := run.Simulation.Question(questionID)
	if qs.HintsRevealed >= len(q.Hints) {
		return "", ErrNoMoreHints
	}

	hint := q.Hints[qs.HintsRevealed]
	qs.HintsRevealed++
	run.Score = scoring.ApplyReveal(run.Score)
	return hint, nil
}

// finalize closes the run locally and then applies the durable
// follow-ups. Follow-up failures are logged and swallowed: the run is
// already finalized and the user should not be blocked.
func (e *Engine) finalize(ctx context.Context, run *Run, summary string) *FinalizeOutcome {
	run.Status = StatusFinalized

	outcome := &FinalizeOutcome{Score: run.Score, Summary: summary}

	if _, err := e.profileRepo.MarkCompleted(ctx, run.UserID, run.Simulation.ID, run.Score); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record completion: %v\n", err)
	}
	if err := e.profileRepo.AddScore(ctx, run.UserID, run.Score); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to add score: %v\n", err)
	}

	award, err := e.issuer.AwardIfNew(ctx, run.UserID, run.Simulation.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to award badge: %v\n", err)
	}
	outcome.BadgeAward = award

	profile, err := e.profileRepo.Get(ctx, run.UserID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to refresh profile: %v\n", err)
	}
	outcome.Profile = profile

	return outcome
}

// bumpAttempt increments the durable attempt counter, once per graded
// submission batch. Counter failures must not disturb the run.
func (e *Engine) bumpAttempt(ctx context.Context, run *Run) {
	count, err := e.attemptRepo.Increment(ctx, run.UserID, run.Simulation.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to bump attempt counter: %v\n", err)
		return
	}
	run.DurableAttempts = count
}

func (e *Engine) logSubmission(ctx context.Context, run *Run, data store.SubmissionEventData) {
	if err := e.eventRepo.AppendSubmission(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log submission event: %v\n", err)
	}
}

func (e *Engine) logStreak(ctx context.Context, run *Run, milestone int) {
	err := e.eventRepo.AppendStreak(ctx, store.StreakEventData{
		UserID:       run.UserID,
		SimulationID: run.Simulation.ID,
		Milestone:    milestone,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log streak event: %v\n", err)
	}
}
