package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requirementSchema(t *testing.T) string {
	t.Helper()
	path := ResolveSchemaPath(filepath.Join("schemas", "requirement.schema.json"))
	require.NotEmpty(t, path, "requirement schema not found")
	return path
}

func TestResolveSchemaPath_FindsRepoSchemas(t *testing.T) {
	path := ResolveSchemaPath(filepath.Join("schemas", "requirement.schema.json"))

	require.NotEmpty(t, path)
	assert.True(t, filepath.IsAbs(path))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestResolveSchemaPath_MissingFile(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath(filepath.Join("schemas", "no-such.schema.json")))
}

func TestValidateBytes_ValidRequirement(t *testing.T) {
	doc := []byte(`{
		"company": "Acme",
		"eligibility_cgpa": 7.0,
		"required_skills": ["Python", "SQL"],
		"threshold": 0.6,
		"top_n": 5
	}`)

	assert.NoError(t, ValidateBytes(requirementSchema(t), doc))
}

func TestValidateBytes_InvalidRequirement(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"missing threshold", `{"eligibility_cgpa": 7.0, "required_skills": []}`},
		{"threshold above one", `{"eligibility_cgpa": 7.0, "required_skills": [], "threshold": 2}`},
		{"unknown field", `{"eligibility_cgpa": 7.0, "required_skills": [], "threshold": 0.5, "extra": 1}`},
		{"top_n zero", `{"eligibility_cgpa": 7.0, "required_skills": [], "threshold": 0.5, "top_n": 0}`},
	}

	schema := requirementSchema(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateBytes(schema, []byte(tc.doc))
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.NotEmpty(t, ve.Errors)
		})
	}
}

func TestValidateFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "req.json")
	require.NoError(t, os.WriteFile(docPath, []byte(
		`{"eligibility_cgpa": 6.5, "required_skills": ["Go"], "threshold": 0.4}`), 0644))

	assert.NoError(t, ValidateFile(requirementSchema(t), docPath))
}

func TestValidateFile_InvalidDocument(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(docPath, []byte(`{"threshold": -1}`), 0644))

	err := ValidateFile(requirementSchema(t), docPath)
	assert.Error(t, err)
}

func TestValidationError_MessageListsFields(t *testing.T) {
	ve := &ValidationError{Errors: []FieldError{
		{Field: "threshold", Message: "Must be less than or equal to 1"},
	}}

	assert.Contains(t, ve.Error(), "threshold")
}
