package generation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kaptinlin/jsonschema"
)

// resultSchema describes the JSON object the prompt asks the model for.
// Headline length and bullet count are guidance to the model, not enforced.
const resultSchema = `{
  "type": "object",
  "required": ["linkedinBullets", "starStory", "headline"],
  "properties": {
    "linkedinBullets": {
      "type": "array",
      "minItems": 1,
      "items": {"type": "string"}
    },
    "starStory": {
      "type": "object",
      "required": ["situation", "task", "action", "result"],
      "properties": {
        "situation": {"type": "string"},
        "task": {"type": "string"},
        "action": {"type": "string"},
        "result": {"type": "string"}
      }
    },
    "headline": {"type": "string"}
  }
}`

// SchemaValidator checks decoded model output against the Result shape.
type SchemaValidator struct {
	schema *jsonschema.Schema
}

// NewSchemaValidator compiles the Result schema.
func NewSchemaValidator() (*SchemaValidator, error) {
	compiled, err := jsonschema.NewCompiler().Compile([]byte(resultSchema))
	if err != nil {
		return nil, fmt.Errorf("invalid result schema: %w", err)
	}
	return &SchemaValidator{schema: compiled}, nil
}

// Validate returns nil if data (as produced by encoding/json into an
// interface{}) matches the Result shape, or an error listing every violation.
func (v *SchemaValidator) Validate(data interface{}) error {
	result := v.schema.Validate(data)
	if result.IsValid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors))
	for field, evalErr := range result.Errors {
		problems = append(problems, fmt.Sprintf("%s: %s", field, evalErr.Message))
	}
	sort.Strings(problems)
	return fmt.Errorf("result shape validation failed: %s", strings.Join(problems, "; "))
}
