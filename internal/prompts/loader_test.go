package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetScoringPrompt(t *testing.T) {
	prompt, err := Get("match_score")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.ProfileJSON}}")
	assert.Contains(t, prompt, "{{.OpportunityJSON}}")
}

func TestGetMissingKey(t *testing.T) {
	_, err := Get("nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestFormat(t *testing.T) {
	template := "profile: {{.ProfileJSON}} opportunity: {{.OpportunityJSON}}"
	result := Format(template, map[string]string{
		"ProfileJSON":     `{"skills":["Python"]}`,
		"OpportunityJSON": `{"title":"Data Intern"}`,
	})
	assert.Equal(t, `profile: {"skills":["Python"]} opportunity: {"title":"Data Intern"}`, result)
	assert.False(t, strings.Contains(result, "{{"))
}
