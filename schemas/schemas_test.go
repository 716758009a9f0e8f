package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ananya/intern-match/internal/schemas"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	schemaFiles := []string{
		"catalog.schema.json",
		"profile.schema.json",
	}

	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			var parsed map[string]any
			require.NoError(t, json.Unmarshal(data, &parsed))
			assert.Contains(t, parsed, "$schema")
		})
	}
}

func TestCatalogSchemaAcceptsValidCatalog(t *testing.T) {
	schema, err := os.ReadFile("catalog.schema.json")
	require.NoError(t, err)

	doc := `[
		{
			"title": "Data Analytics Intern",
			"company": "DataWorks",
			"category": "tech",
			"location": "Mumbai",
			"stipend": 15000,
			"required_skills": ["Python", "SQL"],
			"is_active": true
		}
	]`
	assert.NoError(t, schemas.ValidateJSONString(string(schema), doc))
}

func TestCatalogSchemaRejectsMissingTitle(t *testing.T) {
	schema, err := os.ReadFile("catalog.schema.json")
	require.NoError(t, err)

	doc := `[{"company": "DataWorks", "category": "tech", "is_active": true}]`
	assert.Error(t, schemas.ValidateJSONString(string(schema), doc))
}

func TestProfileSchemaAcceptsValidProfile(t *testing.T) {
	schema, err := os.ReadFile("profile.schema.json")
	require.NoError(t, err)

	doc := `{"skills": ["Python"], "interests": ["data"], "location": "Pune"}`
	assert.NoError(t, schemas.ValidateJSONString(string(schema), doc))
}

func TestProfileSchemaRejectsUnknownField(t *testing.T) {
	schema, err := os.ReadFile("profile.schema.json")
	require.NoError(t, err)

	doc := `{"skills": ["Python"], "age": 21}`
	assert.Error(t, schemas.ValidateJSONString(string(schema), doc))
}
