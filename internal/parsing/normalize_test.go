package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkillName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"JS to JavaScript", "js", "JavaScript"},
		{"JS uppercase", "JS", "JavaScript"},
		{"javascript normalization", "javascript", "JavaScript"},
		{"reactjs to React", "reactjs", "React"},
		{"nodejs to Node.js", "nodejs", "Node.js"},
		{"postgres to SQL", "postgres", "SQL"},
		{"ms excel to Excel", "ms excel", "Excel"},
		{"ml to Machine Learning", "ml", "Machine Learning"},
		{"powerbi to Power BI", "powerbi", "Power BI"},
		{"python stays Python", "python", "Python"},
		{"PYTHON to Python", "PYTHON", "Python"},
		{"SQL stays SQL", "SQL", "SQL"},
		{"Empty string", "", ""},
		{"Whitespace only", "   ", ""},
		{"Multi-word stays as-is", "Data Structures", "Data Structures"},
		{"Already normalized", "Figma", "Figma"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeSkillName(tt.input)
			assert.Equal(t, tt.expected, result, "should normalize skill name correctly")
		})
	}
}

func TestNormalizeSkills(t *testing.T) {
	input := []string{"python", "Python", "js", "JavaScript", "", "  "}
	assert.Equal(t, []string{"Python", "JavaScript"}, NormalizeSkills(input))
}

func TestNormalizeSkillsEmpty(t *testing.T) {
	assert.Empty(t, NormalizeSkills(nil))
	assert.Empty(t, NormalizeSkills([]string{}))
}

func TestDedup(t *testing.T) {
	input := []string{"Python", "python", "SQL", " sql ", "Excel"}
	assert.Equal(t, []string{"Python", "SQL", "Excel"}, Dedup(input))
}
