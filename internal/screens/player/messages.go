package player

import (
	"github.com/Rakshit-11/CareerFinder/internal/attempt"
)

// runStartedMsg is sent when the engine has loaded the run.
type runStartedMsg struct {
	Run *attempt.Run
	Err error
}

// gradeResultMsg is sent when a single-question grading call returns.
type gradeResultMsg struct {
	QuestionID string
	Result     *attempt.SubmitResult
	Err        error
}

// gradeAllMsg is sent when a submit-everything grading call returns.
type gradeAllMsg struct {
	Result *attempt.SubmitAllResult
	Err    error
}

// finalizeMsg is sent when the finalization follow-up returns.
type finalizeMsg struct {
	Outcome *attempt.FinalizeOutcome
	Err     error
}
