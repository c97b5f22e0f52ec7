// Package schemas validates structured input documents against their JSON
// Schemas before they reach the scoring engine.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/cpkonha/talentgraph/internal/types"
)

//go:embed role_requirements.schema.json
var roleRequirementsSchema string

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates schema violations with field paths.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fieldErr := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fieldErr.Field, fieldErr.Message))
	}
	return "schema validation failed: " + strings.Join(parts, "; ")
}

// ValidateRoleRequirements checks a role requirements document against its
// schema and decodes it. Returns ValidationError on schema violations.
func ValidateRoleRequirements(data []byte) (*types.RoleSpec, error) {
	schemaLoader := gojsonschema.NewStringLoader(roleRequirementsSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("failed to run schema validation: %w", err)
	}
	if !result.Valid() {
		validationErr := &ValidationError{}
		for _, desc := range result.Errors() {
			validationErr.Errors = append(validationErr.Errors, FieldError{
				Field:   desc.Field(),
				Message: desc.Description(),
			})
		}
		return nil, validationErr
	}

	var role types.RoleSpec
	if err := json.Unmarshal(data, &role); err != nil {
		return nil, fmt.Errorf("failed to parse role requirements: %w", err)
	}
	return &role, nil
}
