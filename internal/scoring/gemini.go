package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/ananya/intern-match/internal/llm"
	"github.com/ananya/intern-match/internal/prompts"
	"github.com/ananya/intern-match/internal/types"
)

// DefaultTimeout bounds a single scoring call. The ranking engine scores
// many opportunities per request and one slow call must not stall the rest.
const DefaultTimeout = 10 * time.Second

// GeminiScorer scores profile/opportunity pairs with an LLM. Every failure
// mode (API error, timeout, malformed response) is reported as
// ErrUnavailable so the caller can fall back.
type GeminiScorer struct {
	client  llm.Client
	tier    llm.ModelTier
	timeout time.Duration
}

// NewGeminiScorer creates a scorer backed by the given LLM client.
func NewGeminiScorer(client llm.Client) *GeminiScorer {
	return &GeminiScorer{
		client:  client,
		tier:    llm.TierStandard,
		timeout: DefaultTimeout,
	}
}

// WithTimeout overrides the per-call timeout.
func (s *GeminiScorer) WithTimeout(d time.Duration) *GeminiScorer {
	s.timeout = d
	return s
}

// TryScore asks the LLM for a match score. The returned score is clamped to
// [0, 100].
func (s *GeminiScorer) TryScore(ctx context.Context, profile *types.Profile, opp *types.Opportunity) (*Result, error) {
	// Context cancellation is a hard failure and must not be masked as a
	// scorer outage.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prompt, err := s.buildPrompt(profile, opp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.client.GenerateJSON(callCtx, prompt, s.tier)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Printf("[scoring] LLM call failed for %q: %v", opp.Title, err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var result Result
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		log.Printf("[scoring] Unparseable LLM response for %q: %v", opp.Title, err)
		return nil, fmt.Errorf("%w: invalid response: %v", ErrUnavailable, err)
	}

	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > 100 {
		result.Score = 100
	}
	return &result, nil
}

func (s *GeminiScorer) buildPrompt(profile *types.Profile, opp *types.Opportunity) (string, error) {
	template, err := prompts.Get("match_score")
	if err != nil {
		return "", err
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return "", err
	}
	oppJSON, err := json.Marshal(opp)
	if err != nil {
		return "", err
	}

	return prompts.Format(template, map[string]string{
		"ProfileJSON":     string(profileJSON),
		"OpportunityJSON": string(oppJSON),
	}), nil
}
