package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const scoreSchemaURL = "schema://score-record.json"

// scoreSchemaDefinition describes the persisted score record.
var scoreSchemaDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"win":           counter(),
		"lost":          counter(),
		"tie":           counter(),
		"streak":        counter(),
		"highestStreak": counter(),
		"experience":    counter(),
		"powerMeter":    map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
		"level":         map[string]any{"type": "integer", "minimum": 1},
	},
	"required": []any{
		"win", "lost", "tie", "streak", "highestStreak",
		"powerMeter", "experience", "level",
	},
}

func counter() map[string]any {
	return map[string]any{"type": "integer", "minimum": 0}
}

var (
	scoreSchemaOnce sync.Once
	scoreSchema     *jsonschema.Schema
	scoreSchemaErr  error
)

// validateScoreJSON checks raw against the score record schema.
func validateScoreJSON(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledScoreSchema()
	if err != nil {
		return fmt.Errorf("compile score schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compiledScoreSchema() (*jsonschema.Schema, error) {
	scoreSchemaOnce.Do(func() {
		// The compiler expects a parsed JSON value, so round-trip the Go
		// definition through encoding/json.
		defBytes, err := json.Marshal(scoreSchemaDefinition)
		if err != nil {
			scoreSchemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			scoreSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(scoreSchemaURL, defParsed); err != nil {
			scoreSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		scoreSchema, scoreSchemaErr = c.Compile(scoreSchemaURL)
	})
	return scoreSchema, scoreSchemaErr
}
