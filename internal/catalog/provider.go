// Package catalog abstracts where internship opportunities come from. The
// ranking and gap handlers consume a Provider; implementations load from a
// Postgres table or a local JSON file.
package catalog

import (
	"context"

	"github.com/ananya/intern-match/internal/types"
)

// Provider supplies the current opportunity catalog. Freshness is the
// provider's concern; callers treat each call as a snapshot.
type Provider interface {
	// ActiveOpportunities returns the opportunities open for applications.
	ActiveOpportunities(ctx context.Context) ([]types.Opportunity, error)
}

// Static is a fixed in-memory Provider. Useful for tests and for ranking a
// caller-supplied catalog snapshot.
type Static struct {
	Opportunities []types.Opportunity
}

// ActiveOpportunities returns the active subset of the fixed catalog.
func (s *Static) ActiveOpportunities(_ context.Context) ([]types.Opportunity, error) {
	active := make([]types.Opportunity, 0, len(s.Opportunities))
	for _, opp := range s.Opportunities {
		if opp.IsActive {
			active = append(active, opp)
		}
	}
	return active, nil
}
