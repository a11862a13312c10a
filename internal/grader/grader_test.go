package grader

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Rakshit-11/CareerFinder/internal/catalog"
	"github.com/Rakshit-11/CareerFinder/internal/llm"
)

func debugSim(t *testing.T) *catalog.Simulation {
	t.Helper()
	sim := catalog.ByID("se-debugging-1")
	if sim == nil {
		t.Fatal("se-debugging-1 not in catalog")
	}
	return sim
}

func TestRuleGraderAllCorrect(t *testing.T) {
	g := NewRuleGrader()
	sim := debugSim(t)

	result, err := g.GradeBatch(context.Background(), sim, []Answer{
		{QuestionID: "q1", Answer: "5"},
		{QuestionID: "q2", Answer: "negative discount"},
	})
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if !result.AllCorrect {
		t.Error("expected all correct")
	}
	if len(result.PerQuestion) != 2 {
		t.Fatalf("per-question count = %d", len(result.PerQuestion))
	}
	if !strings.Contains(result.Feedback, "Excellent work") {
		t.Errorf("summary feedback = %q", result.Feedback)
	}
}

func TestRuleGraderMixed(t *testing.T) {
	g := NewRuleGrader()
	sim := debugSim(t)

	result, err := g.GradeBatch(context.Background(), sim, []Answer{
		{QuestionID: "q1", Answer: "3"},
		{QuestionID: "q2", Answer: "negative discount"},
	})
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if result.AllCorrect {
		t.Error("expected not all correct")
	}
	if result.PerQuestion[0].Correct {
		t.Error("q1 should be wrong")
	}
	if !result.PerQuestion[1].Correct {
		t.Error("q2 should be correct")
	}
	// Incorrect questions get their override guidance.
	if !strings.Contains(result.Feedback, "assignment vs comparison") {
		t.Errorf("feedback = %q", result.Feedback)
	}
}

func TestRuleGraderUnknownQuestion(t *testing.T) {
	g := NewRuleGrader()
	sim := debugSim(t)

	result, err := g.GradeBatch(context.Background(), sim, []Answer{
		{QuestionID: "q99", Answer: "5"},
	})
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if result.AllCorrect {
		t.Error("unknown question must not count as correct")
	}
}

func TestLLMGraderEnrichesFeedback(t *testing.T) {
	content, _ := json.Marshal(map[string]any{
		"feedback": "One bug short. Look at the discount path again.",
		"per_question": []map[string]any{
			{"question_id": "q1", "feedback": "Count again."},
			{"question_id": "q2", "feedback": "Exactly right."},
		},
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	g := NewLLMGrader(mock, DefaultLLMGraderConfig())

	result, err := g.GradeBatch(context.Background(), debugSim(t), []Answer{
		{QuestionID: "q1", Answer: "4"},
		{QuestionID: "q2", Answer: "negative discount"},
	})
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if result.AllCorrect {
		t.Error("expected not all correct")
	}
	if result.PerQuestion[0].Correct || !result.PerQuestion[1].Correct {
		t.Errorf("per-question verdicts = %+v", result.PerQuestion)
	}
	if result.PerQuestion[0].Feedback != "Count again." {
		t.Errorf("q1 feedback = %q", result.PerQuestion[0].Feedback)
	}
	if result.Feedback != "One bug short. Look at the discount path again." {
		t.Errorf("summary feedback = %q", result.Feedback)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d", mock.CallCount())
	}
}

func TestLLMGraderVerdictsComeFromRules(t *testing.T) {
	// The coaching response carries no verdicts; even a response that
	// claims otherwise in prose cannot flip a rule-graded answer.
	content, _ := json.Marshal(map[string]any{
		"feedback": "Everything looks wrong to me.",
		"per_question": []map[string]any{
			{"question_id": "q1", "feedback": "That answer is incorrect."},
			{"question_id": "q2", "feedback": "Also incorrect."},
		},
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	g := NewLLMGrader(mock, DefaultLLMGraderConfig())

	result, err := g.GradeBatch(context.Background(), debugSim(t), []Answer{
		{QuestionID: "q1", Answer: "5"},
		{QuestionID: "q2", Answer: "negative discount"},
	})
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if !result.AllCorrect {
		t.Error("rule verdicts are authoritative; batch should be all correct")
	}
	for _, pq := range result.PerQuestion {
		if !pq.Correct {
			t.Errorf("rule verdict for %s should be correct", pq.QuestionID)
		}
	}
}

func TestLLMGraderProviderOutageKeepsTemplates(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue yields provider unavailable
	g := NewLLMGrader(mock, DefaultLLMGraderConfig())

	result, err := g.GradeBatch(context.Background(), debugSim(t), []Answer{
		{QuestionID: "q1", Answer: "5"},
		{QuestionID: "q2", Answer: "negative discount"},
	})
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if !result.AllCorrect {
		t.Error("outage must not affect verdicts")
	}
	if !strings.Contains(result.Feedback, "Excellent work") {
		t.Errorf("template feedback should survive the outage, got %q", result.Feedback)
	}
}

func TestLLMGraderMalformedResponseKeepsTemplates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{Content: json.RawMessage(`not json`), Err: errors.New("invalid JSON")},
	})
	g := NewLLMGrader(mock, DefaultLLMGraderConfig())

	result, err := g.GradeBatch(context.Background(), debugSim(t), []Answer{
		{QuestionID: "q1", Answer: "3"},
	})
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if result.PerQuestion[0].Correct {
		t.Error("rule verdict should stand")
	}
	if result.PerQuestion[0].Feedback == "" {
		t.Error("template feedback should fill in for the unusable response")
	}
}

func TestQuestionFeedbackOverrides(t *testing.T) {
	if got := questionFeedback("se-debugging-1", "q1", true); !strings.Contains(got, "5 critical") {
		t.Errorf("override = %q", got)
	}
	if got := questionFeedback("cloud-aws-1", "q1", true); got != "" {
		t.Errorf("simulation without overrides returned %q", got)
	}
}
