// Package scoring computes per-question score deltas and run-level score
// adjustments for simulation attempts.
package scoring

const (
	// BaseScore is the reward for a correct answer before any penalty.
	BaseScore = 100

	// MinCorrectScore is the floor for any correct answer. Hints and
	// attempts reduce the reward but never below this.
	MinCorrectScore = 20

	// HintCost is deducted from the question delta per hint used.
	HintCost = 10

	// AttemptCost is deducted per recorded attempt at the simulation,
	// the one carrying this answer included.
	AttemptCost = 5

	// RevealPenalty is deducted from the running simulation score each
	// time a hint is revealed.
	RevealPenalty = 5
)

// ComputeDelta returns the score delta awarded for a graded answer.
// Incorrect answers are worth nothing. Correct answers start at BaseScore
// and shrink with hint usage and with the simulation's recorded attempt
// count, floored at MinCorrectScore. attempts is the durable counter
// after the submission carrying this answer was recorded, so two hints
// on attempt 3 yield 100 - 20 - 15 = 65.
func ComputeDelta(correct bool, hintsUsed, attempts int) int {
	if !correct {
		return 0
	}
	delta := BaseScore - HintCost*hintsUsed - AttemptCost*attempts
	if delta < MinCorrectScore {
		return MinCorrectScore
	}
	return delta
}

// ApplyReveal deducts the hint-reveal penalty from a running score,
// clamping at zero.
func ApplyReveal(score int) int {
	score -= RevealPenalty
	if score < 0 {
		return 0
	}
	return score
}
