package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ananya/intern-match/internal/types"
)

func TestPrintMatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatches([]types.MatchResult{
		{
			Opportunity:   types.Opportunity{Title: "Data Analytics Intern", Company: "DataWorks"},
			Score:         92,
			MatchedSkills: []string{"Python", "SQL"},
			Badges:        []string{types.BadgeTopMatch},
		},
	}, types.RankStats{AverageScore: 92, HighMatches: 1, AverageStipend: 15000})

	out := buf.String()
	assert.Contains(t, out, "RANKED MATCHES")
	assert.Contains(t, out, "Data Analytics Intern")
	assert.Contains(t, out, "Python, SQL")
	assert.Contains(t, out, "Top Match")
}

func TestPrintMatchesEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatches(nil, types.RankStats{})
	assert.Empty(t, buf.String())
}

func TestPrintGapAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGapAnalysis(&types.GapAnalysis{
		Reports: []types.SkillGapReport{
			{Category: "Data Analytics Intern", Completion: 40, MissingRequired: []string{"Excel"}},
		},
		Priority: []types.PrioritySkill{
			{Skill: "Excel", Resources: []types.LearningResource{{Name: "Excel Skills for Business"}}},
		},
		AverageCompletion: 40,
		TotalMissing:      1,
	})

	out := buf.String()
	assert.Contains(t, out, "SKILL GAP ANALYSIS")
	assert.Contains(t, out, "Data Analytics Intern (40% complete)")
	assert.Contains(t, out, "Excel")
}

func TestPrintGapAnalysisNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintGapAnalysis(nil)
	assert.Empty(t, buf.String())
}
