package validation

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Schema IDs, named after the files in schemas/
const (
	FunctionalityFields = "functionality_fields"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// ErrInvalidDocument is wrapped by every validation failure
var ErrInvalidDocument = errors.New("document does not match schema")

// Validator checks the JSON type of opaque documents before they are stored.
// It is immutable after construction and safe for concurrent use.
type Validator struct {
	schemas map[string]*gojsonschema.Schema
}

// NewValidator compiles the embedded schemas.
func NewValidator() (*Validator, error) {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf("cannot read schemas: %w", err)
	}

	v := &Validator{schemas: make(map[string]*gojsonschema.Schema)}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		raw, err := schemaFS.ReadFile("schemas/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("cannot read schema %s: %w", entry.Name(), err)
		}

		id := strings.TrimSuffix(entry.Name(), ".json")

		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			return nil, fmt.Errorf("cannot compile schema %s: %w", id, err)
		}
		v.schemas[id] = schema
	}

	return v, nil
}

// MustNewValidator is like NewValidator but panics on error. The schemas are
// embedded, so a failure is a programming error.
func MustNewValidator() *Validator {
	v, err := NewValidator()
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks doc against schemaID. An empty or null document is accepted.
func (v *Validator) Validate(schemaID string, doc []byte) error {
	trimmed := strings.TrimSpace(string(doc))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	schema, ok := v.schemas[schemaID]
	if !ok {
		return fmt.Errorf("there is no schema %s", schemaID)
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(trimmed))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			details = append(details, e.String())
		}
		return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(details, "; "))
	}
	return nil
}
