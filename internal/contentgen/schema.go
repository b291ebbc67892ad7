package contentgen

import "github.com/khanhvo/mathgenius/internal/llm"

// questionSchema is the structural contract for one generated question.
// Options stays optional at the schema level; the multiple-choice
// invariant is enforced by the draft check after parsing.
func questionSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":      map[string]any{"type": "string"},
			"type":    map[string]any{"type": "string", "enum": []any{"multiple-choice", "true-false", "fill-in-blank"}},
			"content": map[string]any{"type": "string"},
			"options": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"correctAnswer": map[string]any{"type": "string"},
			"explanation":   map[string]any{"type": "string"},
			"difficulty":    map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
		},
		"required": []any{"id", "type", "content", "correctAnswer", "explanation", "difficulty"},
	}
}

// unitProperties is the shared draft shape for a single learning unit.
func unitProperties() map[string]any {
	return map[string]any{
		"topicId":         map[string]any{"type": "string"},
		"title":           map[string]any{"type": "string"},
		"description":     map[string]any{"type": "string"},
		"totalXp":         map[string]any{"type": "number"},
		"durationMinutes": map[string]any{"type": "number"},
		"questions": map[string]any{
			"type":  "array",
			"items": questionSchema(),
		},
	}
}

var unitRequired = []any{"topicId", "title", "description", "questions", "totalXp", "durationMinutes"}

// pathSchema declares the path mode output: an ordered list of unit drafts.
func pathSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "learning-path",
		Description: "Ordered list of learning unit drafts for a personalized path",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"units": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":       "object",
						"properties": unitProperties(),
						"required":   unitRequired,
					},
				},
			},
			"required": []any{"units"},
		},
	}
}

// unitSchema declares a single-unit output, used by challenge and exam modes.
func unitSchema(name string) *llm.Schema {
	return &llm.Schema{
		Name:        name,
		Description: "A single learning unit draft",
		Definition: map[string]any{
			"type":       "object",
			"properties": unitProperties(),
			"required":   unitRequired,
		},
	}
}
