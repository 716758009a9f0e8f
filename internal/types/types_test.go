package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProfileIsEmpty(t *testing.T) {
	empty := Profile{}
	assert.True(t, empty.IsEmpty())

	withSkills := Profile{Skills: []string{"Python"}}
	assert.False(t, withSkills.IsEmpty())

	withInterests := Profile{Interests: []string{"data"}}
	assert.False(t, withInterests.IsEmpty())
}

func TestOpportunityAllSkills(t *testing.T) {
	opp := Opportunity{
		RequiredSkills:  []string{"Python", "SQL"},
		PreferredSkills: []string{"Tableau"},
	}
	assert.Equal(t, []string{"Python", "SQL", "Tableau"}, opp.AllSkills())
}

func TestOpportunityIsFull(t *testing.T) {
	opp := Opportunity{CurrentApplications: 10, MaxApplications: 10}
	assert.True(t, opp.IsFull())

	opp.CurrentApplications = 9
	assert.False(t, opp.IsFull())

	// no cap configured
	uncapped := Opportunity{CurrentApplications: 500, MaxApplications: 0}
	assert.False(t, uncapped.IsFull())
}

func TestRankRequestValidate(t *testing.T) {
	valid := RankRequest{Profile: Profile{Skills: []string{"Python"}}, TopN: 5}
	assert.NoError(t, valid.Validate())

	badTopN := RankRequest{Profile: Profile{Skills: []string{"Python"}}, TopN: -1}
	assert.Error(t, badTopN.Validate())
}

func TestAnalyzeRequestValidate(t *testing.T) {
	req := AnalyzeRequest{Profile: Profile{Skills: []string{"SQL"}}}
	assert.NoError(t, req.Validate())
}

func TestOpportunityDeadlinePointer(t *testing.T) {
	deadline := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	opp := Opportunity{ApplicationDeadline: &deadline}
	assert.NotNil(t, opp.ApplicationDeadline)
	assert.Equal(t, 2026, opp.ApplicationDeadline.Year())
}
