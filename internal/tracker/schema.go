package tracker

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Persisted snapshots are validated against these schemas before they are
// trusted. A snapshot that fails validation is treated the same as a missing
// one: the caller falls back to defaults and logs a warning.

const coursesSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id"],
		"properties": {
			"id":        {"type": "integer"},
			"progress":  {"type": "integer"},
			"completed": {"type": "boolean"},
			"quizScore": {"type": "integer"}
		}
	}
}`

const profileSchema = `{
	"type": "object",
	"properties": {
		"username":     {"type": "string"},
		"totalPoints":  {"type": "integer"},
		"level":        {"type": "integer"},
		"streak":       {"type": "integer"},
		"lastActivity": {"type": "string"},
		"badges":       {"type": "array", "items": {"type": "string"}}
	}
}`

func validateSnapshot(schema string, data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("validate snapshot: %w", err)
	}
	if !result.Valid() {
		return fmt.Errorf("snapshot does not match schema: %v", result.Errors())
	}
	return nil
}
