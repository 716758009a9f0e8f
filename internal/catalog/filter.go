package catalog

import (
	"github.com/ananya/intern-match/internal/parsing"
	"github.com/ananya/intern-match/internal/types"
)

// Filter narrows a catalog for browsing. Zero values mean "no constraint".
type Filter struct {
	// Search matches title, company, or description, case-insensitively.
	Search string
	// Category matches the opportunity category exactly.
	Category string
	// Location matches as a case-insensitive substring.
	Location string
}

// Matches reports whether the opportunity passes every set constraint.
func (f Filter) Matches(opp *types.Opportunity) bool {
	if f.Search != "" {
		if !parsing.ContainsFold(opp.Title, f.Search) &&
			!parsing.ContainsFold(opp.Company, f.Search) &&
			!parsing.ContainsFold(opp.Description, f.Search) {
			return false
		}
	}
	if f.Category != "" && opp.Category != f.Category {
		return false
	}
	if f.Location != "" && !parsing.ContainsFold(opp.Location, f.Location) {
		return false
	}
	return true
}

// Apply returns the opportunities passing the filter, preserving order.
func (f Filter) Apply(opportunities []types.Opportunity) []types.Opportunity {
	filtered := make([]types.Opportunity, 0, len(opportunities))
	for i := range opportunities {
		if f.Matches(&opportunities[i]) {
			filtered = append(filtered, opportunities[i])
		}
	}
	return filtered
}
