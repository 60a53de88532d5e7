// Package schemas validates backend response payloads against the JSON Schemas
// the client was built for. Validation runs in tests and, behind the client's
// strict flag, against live responses.
package schemas

import (
	"embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFS embed.FS

// Schema names accepted by ValidateBytes.
const (
	CandidatePage      = "candidate_page"
	JobPage            = "job_page"
	JobRecommendations = "job_recommendations"
)

// ValidationError reports the field-level problems found in a payload.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError is a single validation failure at one field path.
type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("payload does not match schema %s", e.Schema)
	}
	first := e.Errors[0]
	if len(e.Errors) == 1 {
		return fmt.Sprintf("schema %s: %s: %s", e.Schema, first.Field, first.Message)
	}
	return fmt.Sprintf("schema %s: %s: %s (and %d more)", e.Schema, first.Field, first.Message, len(e.Errors)-1)
}

// ValidateBytes checks a raw JSON payload against the named schema.
func ValidateBytes(name string, payload []byte) error {
	schemaBytes, err := schemaFS.ReadFile(name + ".schema.json")
	if err != nil {
		return fmt.Errorf("unknown schema %q: %w", name, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewBytesLoader(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to validate against schema %s: %w", name, err)
	}
	if result.Valid() {
		return nil
	}

	valErr := &ValidationError{Schema: name}
	for _, desc := range result.Errors() {
		valErr.Errors = append(valErr.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return valErr
}
