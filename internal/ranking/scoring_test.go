package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ananya/intern-match/internal/types"
)

func TestFallbackScoreFinanceScenario(t *testing.T) {
	profile := &types.Profile{
		Skills:    []string{"Python", "Data Analysis"},
		Interests: []string{"Finance"},
	}
	opp := &types.Opportunity{
		Title:           "Financial Analyst Intern",
		Location:        "Pune",
		RequiredSkills:  []string{"Python", "SQL", "Excel"},
		PreferredSkills: []string{"Machine Learning"},
	}

	// 60 base + (30*1)/4 skill + 15 interest ("Financial" contains "Finance")
	score, matched := FallbackScore(profile, opp)
	assert.Equal(t, 82, score)
	assert.Equal(t, []string{"Python"}, matched)
}

func TestFallbackScoreNoOverlapIsFloor(t *testing.T) {
	profile := &types.Profile{
		Skills:    []string{"Figma"},
		Interests: []string{"design"},
		Location:  "Delhi",
	}
	opp := &types.Opportunity{
		Title:          "Accounting Intern",
		Description:    "Ledger work",
		Location:       "Mumbai",
		RequiredSkills: []string{"Accounting"},
	}

	score, matched := FallbackScore(profile, opp)
	assert.Equal(t, 60, score)
	assert.Empty(t, matched)
}

func TestFallbackScoreEmptySkillSetNoDivisionError(t *testing.T) {
	profile := &types.Profile{Interests: []string{"market"}, Location: "Pune"}
	opp := &types.Opportunity{
		Title:    "Marketing Intern",
		Location: "Pune, Maharashtra",
	}

	// no skills on either side: only interest and location contribute
	score, _ := FallbackScore(profile, opp)
	assert.Equal(t, 60+15+10, score)
}

func TestFallbackScoreClampsAtCeiling(t *testing.T) {
	profile := &types.Profile{
		Skills:    []string{"Python"},
		Interests: []string{"data"},
		Location:  "Pune",
	}
	opp := &types.Opportunity{
		Title:          "Data Intern",
		Location:       "Pune",
		RequiredSkills: []string{"Python"},
	}

	// 60 + 30 + 15 + 10 = 115, clamped to 95
	score, _ := FallbackScore(profile, opp)
	assert.Equal(t, 95, score)
}

func TestFallbackScoreBounds(t *testing.T) {
	profiles := []*types.Profile{
		{},
		{Skills: []string{"Python", "SQL", "Excel", "React"}},
		{Skills: []string{"Python"}, Interests: []string{"intern"}, Location: "Remote"},
	}
	opps := []*types.Opportunity{
		{Title: "Intern"},
		{Title: "Data Intern", Location: "Remote", RequiredSkills: []string{"Python", "SQL"}},
		{Title: "Dev Intern", RequiredSkills: []string{"React"}, PreferredSkills: []string{"Node.js"}},
	}

	for _, p := range profiles {
		for _, o := range opps {
			score, _ := FallbackScore(p, o)
			assert.GreaterOrEqual(t, score, 60)
			assert.LessOrEqual(t, score, 95)
		}
	}
}

func TestFallbackScoreLocationBonus(t *testing.T) {
	profile := &types.Profile{Location: "bangalore"}
	opp := &types.Opportunity{Title: "Ops Intern", Location: "Bangalore, Karnataka"}

	score, _ := FallbackScore(profile, opp)
	assert.Equal(t, 70, score)
}

func TestFallbackScoreDeterministic(t *testing.T) {
	profile := &types.Profile{Skills: []string{"SQL", "Excel"}, Interests: []string{"analytics"}}
	opp := &types.Opportunity{
		Title:          "Data Analytics Intern",
		RequiredSkills: []string{"Python", "SQL", "Excel"},
	}

	first, _ := FallbackScore(profile, opp)
	for i := 0; i < 10; i++ {
		score, _ := FallbackScore(profile, opp)
		assert.Equal(t, first, score)
	}
}
