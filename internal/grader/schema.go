package grader

import "github.com/Rakshit-11/CareerFinder/internal/llm"

// FeedbackSchema defines the JSON schema for LLM coaching responses.
// The provider supplies prose only; verdicts come from the rules.
var FeedbackSchema = &llm.Schema{
	Name:        "simulation-feedback",
	Description: "Coaching feedback for a graded batch of simulation answers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"feedback": map[string]any{
				"type":        "string",
				"description": "Overall coaching feedback for the submission",
			},
			"per_question": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_id": map[string]any{
							"type":        "string",
							"description": "ID of the question this entry coaches",
						},
						"feedback": map[string]any{
							"type":        "string",
							"description": "One or two sentences of guidance for this question",
						},
					},
					"required":             []any{"question_id", "feedback"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"feedback"},
		"additionalProperties": false,
	},
}
