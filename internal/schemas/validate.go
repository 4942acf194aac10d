// Package schemas provides JSON Schema validation for injectable
// configuration artifacts, currently the skill taxonomy file.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// taxonomySchema validates user-supplied taxonomy files before they are
// loaded. Keeping the schema inline avoids filesystem lookups from library
// code.
const taxonomySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Skill Taxonomy",
  "type": "object",
  "required": ["categories"],
  "properties": {
    "categories": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "keywords", "weight"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "keywords": {
            "type": "array",
            "items": {"type": "string", "minLength": 1}
          },
          "weight": {"type": "number", "minimum": 0, "maximum": 1}
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents a schema validation failure with field paths
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "schema validation failed"
	}
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "schema validation failed: " + strings.Join(parts, "; ")
}

// ValidateTaxonomy validates raw taxonomy JSON against the taxonomy schema.
// Returns a *ValidationError listing every violation, or nil when valid.
func ValidateTaxonomy(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(taxonomySchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to run schema validation: %w", err)
	}

	if result.Valid() {
		return nil
	}

	verr := &ValidationError{}
	for _, desc := range result.Errors() {
		verr.Errors = append(verr.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return verr
}
