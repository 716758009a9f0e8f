// Package ranking implements match scoring and ranking of internship
// opportunities against a candidate profile.
package ranking

import (
	"github.com/ananya/intern-match/internal/parsing"
	"github.com/ananya/intern-match/internal/types"
)

// Fallback score bounds. Heuristic scores live in a narrower band than LLM
// scores so a fallback-scored opportunity never looks like a perfect match
// or a hopeless one.
const (
	fallbackFloor = 60
	fallbackCeil  = 95

	skillWeight   = 30
	interestBonus = 15
	locationBonus = 10
)

// FallbackScore computes the heuristic match score for one opportunity and
// returns it with the profile skills that matched. The score is always in
// [60, 95] and depends only on its inputs.
func FallbackScore(profile *types.Profile, opp *types.Opportunity) (int, []string) {
	allSkills := parsing.Dedup(opp.AllSkills())
	matched := parsing.MatchedSkills(profile.Skills, allSkills)

	denom := len(allSkills)
	if denom < 1 {
		denom = 1
	}
	score := fallbackFloor + (skillWeight*len(matched))/denom

	if interestAligned(profile, opp) {
		score += interestBonus
	}

	if profile.Location != "" && parsing.ContainsFold(opp.Location, profile.Location) {
		score += locationBonus
	}

	if score < fallbackFloor {
		score = fallbackFloor
	}
	if score > fallbackCeil {
		score = fallbackCeil
	}
	return score, matched
}

// interestAligned reports whether any profile interest appears in the
// opportunity's title or description.
func interestAligned(profile *types.Profile, opp *types.Opportunity) bool {
	for _, interest := range profile.Interests {
		if parsing.ContainsFold(opp.Title, interest) || parsing.ContainsFold(opp.Description, interest) {
			return true
		}
	}
	return false
}

// interestInTitle reports whether any profile interest appears in the title
// alone. Used for rationale wording, which calls out title alignment.
func interestInTitle(profile *types.Profile, opp *types.Opportunity) bool {
	for _, interest := range profile.Interests {
		if parsing.ContainsFold(opp.Title, interest) {
			return true
		}
	}
	return false
}
