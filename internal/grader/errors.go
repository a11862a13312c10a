package grader

import (
	"encoding/json"
	"fmt"
)

// ValidationError rejects a submission before any grading happens.
// It is surfaced inline next to the input; nothing leaves the process
// and no attempt is consumed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// ErrGradingUnavailable indicates the grading backend could not be
// reached or answered with a server-side failure. The submission may be
// retried; no run state should change.
type ErrGradingUnavailable struct {
	Err error
}

func (e *ErrGradingUnavailable) Error() string {
	return fmt.Sprintf("grading unavailable: %v", e.Err)
}

func (e *ErrGradingUnavailable) Unwrap() error {
	return e.Err
}

// ErrMalformedResponse indicates the grader answered but its output
// could not be used at all, not even a top-level verdict.
type ErrMalformedResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrMalformedResponse) Error() string {
	return fmt.Sprintf("malformed grader response: %v", e.Err)
}

func (e *ErrMalformedResponse) Unwrap() error {
	return e.Err
}
