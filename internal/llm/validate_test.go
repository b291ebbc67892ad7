package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-object",
		Description: "A test object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":  map[string]any{"type": "string"},
				"level": map[string]any{"type": "integer", "minimum": 1},
				"type":  map[string]any{"type": "string", "enum": []any{"multiple-choice", "fill-in-blank", "true-false"}},
			},
			"required": []any{"name", "level"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"name":"Phép cộng","level":2,"type":"multiple-choice"}`)
	out, err := validateResponse(testSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if string(out) != string(raw) {
		t.Fatalf("valid content should pass through unchanged, got %s", out)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"name":"Phép trừ","level":1}`)
	if _, err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"name":"Phép nhân"}`)
	_, err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"name":"Phép chia","level":"hai"}`)
	_, err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"name":"Hình học","level":3,"type":"essay"}`)
	if _, err := validateResponse(testSchema(), raw); err == nil {
		t.Fatal("expected error for invalid enum value")
	}
}

func TestValidateResponse_RepairsTrailingComma(t *testing.T) {
	raw := json.RawMessage(`{"name":"Số thập phân","level":4,}`)
	out, err := validateResponse(testSchema(), raw)
	if err != nil {
		t.Fatalf("expected trailing comma to be repaired, got: %v", err)
	}
	var parsed struct {
		Name  string `json:"name"`
		Level int    `json:"level"`
	}
	if err := json.Unmarshal(out, &parsed); err != nil {
		t.Fatalf("repaired content should be valid JSON: %v", err)
	}
	if parsed.Level != 4 {
		t.Fatalf("expected level 4 after repair, got %d", parsed.Level)
	}
}

func TestValidateResponse_UnrepairableContent(t *testing.T) {
	raw := json.RawMessage(`I could not generate that.`)
	_, err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for non-JSON prose")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	if _, err := validateResponse(testSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	out, err := validateResponse(nil, raw)
	if err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
	if string(out) != string(raw) {
		t.Fatalf("nil schema should pass content through, got %s", out)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "test-nested",
		Description: "Nested test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"unit": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{"type": "string"},
					},
					"required": []any{"title"},
				},
				"questions": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"unit", "questions"},
		},
	}

	valid := json.RawMessage(`{"unit":{"title":"Phân số"},"questions":["1/2 + 1/4 = ?"]}`)
	if _, err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"unit":{"title":"Phân số"},"questions":[1,2]}`)
	if _, err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
