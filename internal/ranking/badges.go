package ranking

import (
	"fmt"
	"strings"

	"github.com/ananya/intern-match/internal/types"
)

// Config holds the tunable ranking thresholds.
type Config struct {
	// HighStipendThreshold is the monthly stipend at or above which an
	// opportunity earns the High Stipend badge.
	HighStipendThreshold int
	// RemoteCategory is the catalog category treated as remote work.
	RemoteCategory string
}

// DefaultConfig returns the ranking thresholds used in production.
func DefaultConfig() Config {
	return Config{
		HighStipendThreshold: 20000,
		RemoteCategory:       types.CategoryRemote,
	}
}

// badgesFor derives the badge list for a scored opportunity. Badge order is
// fixed by the rule order here; callers rely on it being deterministic.
func badgesFor(score int, opp *types.Opportunity, cfg Config) []string {
	var badges []string
	if score >= 90 {
		badges = append(badges, types.BadgeTopMatch)
	}
	if opp.Stipend >= cfg.HighStipendThreshold {
		badges = append(badges, types.BadgeHighStipend)
	}
	if strings.EqualFold(opp.Category, cfg.RemoteCategory) {
		badges = append(badges, types.BadgeRemote)
	}
	if strings.EqualFold(opp.DifficultyLevel, types.DifficultyBeginner) {
		badges = append(badges, types.BadgeBeginnerFriendly)
	}
	if strings.EqualFold(opp.Category, types.CategoryTech) {
		badges = append(badges, types.BadgeTechHeavy)
	}
	return badges
}

// rationaleFor builds the human-readable explanation attached to a match.
func rationaleFor(profile *types.Profile, opp *types.Opportunity, matched []string) string {
	var parts []string
	if len(matched) > 0 {
		parts = append(parts, fmt.Sprintf("Matches %d of your skills.", len(matched)))
	}
	if interestInTitle(profile, opp) {
		parts = append(parts, "Aligns with your interests.")
	}
	parts = append(parts, fmt.Sprintf("Good growth opportunity in %s.", opp.Company))
	return strings.Join(parts, " ")
}
