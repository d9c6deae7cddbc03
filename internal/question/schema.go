package question

import "github.com/nlebele/dyscreen/internal/llm"

// Schema defines the JSON structure requested from the generative backend
// for question generation. Providers with structured output honor it
// directly; the layered text parser covers replies that don't.
var Schema = &llm.Schema{
	Name:        "screening-question",
	Description: "A single screening question with its canonical answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the subject, plain ASCII",
			},
			"choices": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 options for multiple-choice questions, in A-D order. Empty array for free-text.",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The canonical answer: the correct option's letter (A-D) for multiple choice, a short phrase for free text",
			},
		},
		"required":             []any{"question", "choices", "answer"},
		"additionalProperties": false,
	},
}
