package bankfile

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchema is the JSON schema an imported document must satisfy before
// it is decoded. Field-level constraints beyond shape (duplicate ids,
// exactly one correct answer) are enforced in Go after decoding.
var bankSchema = map[string]any{
	"type":     "object",
	"required": []any{"questions", "sessions"},
	"properties": map[string]any{
		"name":      map[string]any{"type": "string"},
		"createdAt": map[string]any{"type": "string"},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "text", "answers"},
				"properties": map[string]any{
					"id":        map[string]any{"type": "string", "minLength": 1},
					"text":      map[string]any{"type": "string", "minLength": 1},
					"objective": map[string]any{"type": "string"},
					"answers": map[string]any{
						"type":     "array",
						"minItems": 2,
						"items": map[string]any{
							"type":     "object",
							"required": []any{"id", "text", "isCorrect"},
							"properties": map[string]any{
								"id":          map[string]any{"type": "string", "minLength": 1},
								"text":        map[string]any{"type": "string", "minLength": 1},
								"isCorrect":   map[string]any{"type": "boolean"},
								"explanation": map[string]any{"type": "string"},
							},
						},
					},
					"tags": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"eloRating":       map[string]any{"type": "number"},
					"timesAnswered":   map[string]any{"type": "integer", "minimum": 0},
					"timesCorrect":    map[string]any{"type": "integer", "minimum": 0},
					"createdAt":       map[string]any{"type": "string"},
					"lastStudied":     map[string]any{"type": []any{"string", "null"}},
					"nextReview":      map[string]any{"type": []any{"string", "null"}},
					"intervalDays":    map[string]any{"type": "number"},
					"easeFactor":      map[string]any{"type": "number"},
					"repetitionCount": map[string]any{"type": "integer", "minimum": 0},
				},
			},
		},
		"sessions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"sessionId", "questionIds", "results", "startTime"},
				"properties": map[string]any{
					"sessionId": map[string]any{"type": "string", "minLength": 1},
					"questionIds": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"results": map[string]any{
						"type": "object",
						"additionalProperties": map[string]any{
							"type": "string",
							"enum": []any{"correct", "incorrect", "skipped"},
						},
					},
					"startTime": map[string]any{"type": "string"},
					"endTime":   map[string]any{"type": []any{"string", "null"}},
				},
			},
		},
	},
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// compileBankSchema compiles the embedded schema once. The compiler wants
// a parsed JSON value, so the definition is round-tripped through
// encoding/json first.
func compileBankSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := json.Marshal(bankSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://bank.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
