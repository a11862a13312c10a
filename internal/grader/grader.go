// Package grader turns submitted answers into verdicts and feedback.
//
// Verdicts come from the deterministic rules in this package. Feedback
// comes from built-in templates, optionally enriched by an LLM provider
// when one is configured.
package grader

import (
	"context"

	"github.com/Rakshit-11/CareerFinder/internal/catalog"
)

// Answer is one submitted answer in a grading request.
type Answer struct {
	QuestionID string
	Answer     string
}

// QuestionResult is the graded outcome for a single question.
type QuestionResult struct {
	QuestionID string
	Answer     string
	Correct    bool
	Feedback   string
}

// Result is the outcome of grading a batch of answers.
type Result struct {
	PerQuestion []QuestionResult
	AllCorrect  bool
	Feedback    string
}

// Grader grades a batch of answers against a simulation.
type Grader interface {
	GradeBatch(ctx context.Context, sim *catalog.Simulation, answers []Answer) (*Result, error)
}

// RuleGrader grades locally using the normalization rules and template
// feedback. It never fails and needs no network.
type RuleGrader struct{}

// NewRuleGrader returns the built-in deterministic grader.
func NewRuleGrader() *RuleGrader {
	return &RuleGrader{}
}

func (g *RuleGrader) GradeBatch(ctx context.Context, sim *catalog.Simulation, answers []Answer) (*Result, error) {
	result := &Result{AllCorrect: true}

	for _, a := range answers {
		qr := QuestionResult{QuestionID: a.QuestionID, Answer: a.Answer}

		q := sim.Question(a.QuestionID)
		if q == nil {
			qr.Feedback = "Unknown question"
			result.AllCorrect = false
			result.PerQuestion = append(result.PerQuestion, qr)
			continue
		}

		qr.Correct = CheckAnswer(a.Answer, q)
		qr.Feedback = questionFeedback(sim.ID, q.ID, qr.Correct)
		if !qr.Correct {
			result.AllCorrect = false
		}
		result.PerQuestion = append(result.PerQuestion, qr)
	}

	result.Feedback = summaryFeedback(sim, result.PerQuestion, result.AllCorrect)
	return result, nil
}
