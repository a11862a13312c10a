package grader

import (
	"fmt"
	"strings"

	"github.com/Rakshit-11/CareerFinder/internal/catalog"
)

// questionOverrides holds hand-written per-question feedback for the
// simulations where generic guidance isn't enough.
var questionOverrides = map[string]map[string]feedbackPair{
	"se-debugging-1": {
		"q1": {
			correct:   "There are 5 critical logic issues impacting reliability.",
			incorrect: "Count distinct logic bugs across functions; check assignment vs comparison, input validation, concurrency, and empty cart checks.",
		},
		"q2": {
			correct:   "Negative discount validation is missing; values below 0 must be rejected.",
			incorrect: "Review discount handling: add validation to prevent negative or over-100% discounts.",
		},
	},
	"ds-analysis-1": {
		"q1": {
			correct:   "Spot on: Monthly_Charges shows the strongest positive correlation with churn.",
			incorrect: "Check correlations again; pricing-related features (e.g. Monthly_Charges) are highly predictive.",
		},
		"q2": {
			correct:   "Correct: churn is higher for month-to-month contracts versus fixed terms.",
			incorrect: "Compare churn rates across contract types; month-to-month users churn more often.",
		},
		"q3": {
			correct:   "Yes, Online_Security and similar add-ons reduce churn likelihood.",
			incorrect: "Consider features that add security or support; they are associated with lower churn (e.g. Online_Security).",
		},
	},
	"ds-modeling-1": {
		"q1": {
			correct:   "Great, hitting ~85% accuracy meets the target for this dataset.",
			incorrect: "Aim for around 85% accuracy; review preprocessing and model selection.",
		},
		"q2": {
			correct:   "Naive Bayes is a solid baseline for spam filtering.",
			incorrect: "Consider classic text classifiers like Naive Bayes for this task.",
		},
		"q3": {
			correct:   "TF-IDF is an appropriate feature extraction approach here.",
			incorrect: "Use a standard feature extraction method like TF-IDF for text.",
		},
	},
}

type feedbackPair struct {
	correct   string
	incorrect string
}

// questionFeedback returns per-question guidance, or "" when no override
// exists for the question.
func questionFeedback(simulationID, questionID string, correct bool) string {
	simMap, ok := questionOverrides[simulationID]
	if !ok {
		return ""
	}
	pair, ok := simMap[questionID]
	if !ok {
		return ""
	}
	if correct {
		return pair.correct
	}
	return pair.incorrect
}

// summaryFeedback builds the top-level feedback line for a graded batch.
// A fully correct batch gets a completion summary rather than a repeat of
// the per-question guidance.
func summaryFeedback(sim *catalog.Simulation, results []QuestionResult, allCorrect bool) string {
	if allCorrect {
		return fmt.Sprintf("Excellent work! You completed '%s' and answered all questions correctly.", sim.Title)
	}

	var parts []string
	for _, r := range results {
		if r.Feedback != "" && !r.Correct {
			parts = append(parts, r.Feedback)
		}
	}
	if len(parts) == 0 {
		return "Good effort! Review the incorrect questions and try again."
	}
	return strings.Join(parts, " ")
}
