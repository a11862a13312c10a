package grader

import (
	"bytes"
	"context"
	"encoding/json"
	"text/template"

	"github.com/Rakshit-11/CareerFinder/internal/catalog"
	"github.com/Rakshit-11/CareerFinder/internal/llm"
)

// LLMGraderConfig holds settings for the LLM-backed grader.
type LLMGraderConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultLLMGraderConfig returns sensible defaults.
func DefaultLLMGraderConfig() LLMGraderConfig {
	return LLMGraderConfig{
		MaxTokens:   768,
		Temperature: 0.3,
	}
}

// LLMGrader grades with the deterministic rules and asks an LLM provider
// to enrich the feedback prose. Verdicts never come from the provider:
// any provider failure, malformed response included, leaves the template
// feedback in place and the submission succeeds.
type LLMGrader struct {
	provider llm.Provider
	rules    *RuleGrader
	cfg      LLMGraderConfig
}

// NewLLMGrader creates an LLM-backed grader.
func NewLLMGrader(provider llm.Provider, cfg LLMGraderConfig) *LLMGrader {
	return &LLMGrader{provider: provider, rules: NewRuleGrader(), cfg: cfg}
}

// feedbackOutput is the raw LLM coaching response.
type feedbackOutput struct {
	Feedback    string `json:"feedback"`
	PerQuestion []struct {
		QuestionID string `json:"question_id"`
		Feedback   string `json:"feedback"`
	} `json:"per_question"`
}

func (g *LLMGrader) GradeBatch(ctx context.Context, sim *catalog.Simulation, answers []Answer) (*Result, error) {
	result, err := g.rules.GradeBatch(ctx, sim, answers)
	if err != nil {
		return nil, err
	}
	g.enrich(ctx, sim, result)
	return result, nil
}

// enrich overlays provider coaching prose on the rule-graded result.
// Only feedback strings are taken; unknown question IDs are dropped.
func (g *LLMGrader) enrich(ctx context.Context, sim *catalog.Simulation, result *Result) {
	ctx = llm.WithPurpose(ctx, "simulation-feedback")

	userMsg, err := buildFeedbackMessage(sim, result)
	if err != nil {
		return
	}

	req := llm.Request{
		System: feedbackSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      FeedbackSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return
	}

	var out feedbackOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return
	}

	byID := make(map[string]string, len(out.PerQuestion))
	for _, pq := range out.PerQuestion {
		if pq.Feedback != "" {
			byID[pq.QuestionID] = pq.Feedback
		}
	}
	for i := range result.PerQuestion {
		if fb, ok := byID[result.PerQuestion[i].QuestionID]; ok {
			result.PerQuestion[i].Feedback = fb
		}
	}
	if out.Feedback != "" {
		result.Feedback = out.Feedback
	}
}

const feedbackSystemPrompt = `You are a career-simulation coach. You receive a simulation task, its questions, and a candidate's submitted answers with their graded verdicts. The verdicts are final; do not re-grade. Write short coaching feedback for each answer and an overall summary.

Rules:
- Feedback must be encouraging and concrete.
- Never reveal an expected answer the candidate has not found; nudge toward it instead.
- Respond with JSON only, matching the provided schema.`

var feedbackMessageTmpl = template.Must(template.New("feedback").Parse(`Simulation: {{.Title}}
Task: {{.Description}}

Graded answers:
{{range .Results}}- {{.QuestionID}} ({{if .Correct}}correct{{else}}incorrect{{end}}): {{.Answer}}
{{end}}
Coach the candidate on every answer.`))

func buildFeedbackMessage(sim *catalog.Simulation, result *Result) (string, error) {
	data := struct {
		Title       string
		Description string
		Results     []QuestionResult
	}{
		Title:       sim.Title,
		Description: sim.Description,
		Results:     result.PerQuestion,
	}

	var buf bytes.Buffer
	if err := feedbackMessageTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
