package types

// Badge constants attached to match results, in rule evaluation order.
const (
	BadgeTopMatch         = "Top Match"
	BadgeHighStipend      = "High Stipend"
	BadgeRemote           = "Remote"
	BadgeBeginnerFriendly = "Beginner Friendly"
	BadgeTechHeavy        = "Tech Heavy"
)

// MatchResult represents a scored opportunity for one profile.
// Results are computed fresh per ranking request and never persisted.
type MatchResult struct {
	Opportunity   Opportunity `json:"opportunity"`
	Score         int         `json:"score"` // bounded, comparable across scoring paths
	MatchedSkills []string    `json:"matched_skills"`
	Badges        []string    `json:"badges"`
	Rationale     string      `json:"rationale"`
	ScoredBy      string      `json:"scored_by"` // "external" or "fallback"
}

// RankStats summarizes a ranked result list for overview display.
type RankStats struct {
	AverageScore   int `json:"average_score"`
	HighMatches    int `json:"high_matches"` // results scoring above 85
	AverageStipend int `json:"average_stipend"`
}

// Ranking is the full response of a ranking request.
type Ranking struct {
	Results []MatchResult `json:"results"`
	Stats   RankStats     `json:"stats"`
}
