package llm

import (
	"testing"
)

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"level": map[string]any{"type": "integer"},
			"type":  map[string]any{"type": "string", "enum": []any{"multiple-choice", "fill-in-blank", "true-false"}},
			"questions": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"title", "level"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["title"].Type != "STRING" {
		t.Fatalf("expected STRING for title, got %s", schema.Properties["title"].Type)
	}
	if schema.Properties["level"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for level, got %s", schema.Properties["level"].Type)
	}
	if len(schema.Properties["type"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["type"].Enum))
	}
	if schema.Properties["questions"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for questions, got %s", schema.Properties["questions"].Type)
	}
	if schema.Properties["questions"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for questions items, got %s", schema.Properties["questions"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestBuildGeminiContents_RoleMapping(t *testing.T) {
	contents := buildGeminiContents([]Message{
		{Role: RoleUser, Content: "sinh lộ trình"},
		{Role: RoleAssistant, Content: "đây"},
	})
	if len(contents) != 2 {
		t.Fatalf("expected 2 contents, got %d", len(contents))
	}
	if contents[0].Role != "user" {
		t.Fatalf("expected user role, got %s", contents[0].Role)
	}
	if contents[1].Role != "model" {
		t.Fatalf("expected model role for assistant, got %s", contents[1].Role)
	}
}
