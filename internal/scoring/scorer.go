// Package scoring defines the scorer abstraction used by the ranking engine
// and its LLM-backed implementation. A scorer produces a bounded match score
// for one profile/opportunity pair; when it cannot, it reports
// ErrUnavailable and the engine falls back to heuristic scoring.
package scoring

import (
	"context"
	"errors"

	"github.com/ananya/intern-match/internal/types"
)

// ErrUnavailable signals that the scorer could not produce a score for this
// pair. It is a soft failure: callers should fall back rather than abort.
var ErrUnavailable = errors.New("scorer unavailable")

// Result is a single scoring outcome.
type Result struct {
	Score     int    `json:"score"` // 0-100
	Rationale string `json:"rationale"`
}

// Scorer scores one profile against one opportunity.
type Scorer interface {
	TryScore(ctx context.Context, profile *types.Profile, opp *types.Opportunity) (*Result, error)
}
