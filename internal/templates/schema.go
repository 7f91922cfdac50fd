package templates

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const bankSchemaURL = "schema://template-bank.json"

// bankSchema describes a template bank document.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{"type": "integer", "minimum": 1},
		"templates": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":       map[string]any{"type": "string", "minLength": 1},
					"category": map[string]any{"type": "string", "enum": []any{"GRAMMAR", "READING", "LISTENING", "VOCAB"}},
					"difficulty": map[string]any{
						"type":    "integer",
						"minimum": 1,
						"maximum": 5,
					},
					"pattern":             map[string]any{"type": "string"},
					"correct_answer_slot": map[string]any{"type": "integer"},
					"distractor_patterns": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"grammar_focus": map[string]any{"type": "string"},
					"vocabulary_focus": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"explanation": map[string]any{"type": "string"},
					"start_week":  map[string]any{"type": "integer", "minimum": 0},
					"end_week":    map[string]any{"type": "integer", "minimum": 0},
				},
				"required": []any{"id", "category", "difficulty", "pattern", "distractor_patterns"},
			},
		},
	},
	"required": []any{"templates"},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledBankSchema compiles the bank schema on first use.
func compiledBankSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a parsed JSON value, not Go maps with typed slices.
		defBytes, err := json.Marshal(bankSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(bankSchemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(bankSchemaURL)
	})
	return compiled, compileErr
}

// validateDocument checks a JSON-encoded bank document against the schema.
func validateDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := compiledBankSchema()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
