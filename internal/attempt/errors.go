package attempt

import "errors"

var (
	// ErrFinalized rejects operations on a run that has already finalized.
	ErrFinalized = errors.New("simulation already finalized")

	// ErrAlreadyCorrect rejects resubmission of a question that has been
	// answered correctly.
	ErrAlreadyCorrect = errors.New("question already answered correctly")

	// ErrUnknownQuestion rejects question IDs not in the simulation.
	ErrUnknownQuestion = errors.New("unknown question")

	// ErrNoMoreHints signals that every hint has been revealed.
	ErrNoMoreHints = errors.New("no more hints available")
)
