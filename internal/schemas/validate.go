// Package schemas provides JSON Schema validation for the files the CLI
// consumes.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ResolveSchemaPath finds a schema file by trying the path relative to the
// working directory and then one and two levels up, which covers commands
// and tests running from different directories. Returns empty when nothing
// exists.
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}
	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}
	return ""
}

// ValidationError reports one or more schema violations with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateFile validates a JSON document on disk against a JSON Schema file.
func ValidateFile(schemaPath, jsonPath string) error {
	schemaAbs, err := filepath.Abs(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to resolve schema path: %w", err)
	}
	jsonAbs, err := filepath.Abs(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to resolve document path: %w", err)
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + schemaAbs)
	documentLoader := gojsonschema.NewReferenceLoader("file://" + jsonAbs)
	return validate(schemaLoader, documentLoader)
}

// ValidateBytes validates an in-memory JSON document against a schema file.
func ValidateBytes(schemaPath string, document []byte) error {
	schemaAbs, err := filepath.Abs(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to resolve schema path: %w", err)
	}
	schemaLoader := gojsonschema.NewReferenceLoader("file://" + schemaAbs)
	documentLoader := gojsonschema.NewBytesLoader(document)
	return validate(schemaLoader, documentLoader)
}

func validate(schemaLoader, documentLoader gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
