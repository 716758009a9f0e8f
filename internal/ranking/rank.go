package ranking

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/ananya/intern-match/internal/scoring"
	"github.com/ananya/intern-match/internal/types"
)

// ErrInvalidInput marks requests the engine refuses outright, as opposed to
// per-item soft failures that degrade to fallback scoring.
var ErrInvalidInput = errors.New("invalid input")

// maxWorkers bounds concurrent external scoring calls per ranking request.
const maxWorkers = 8

// Scored-by labels attached to results.
const (
	ScoredByExternal = "external"
	ScoredByFallback = "fallback"
)

// Engine ranks a catalog of opportunities for one profile. The external
// scorer is optional; with a nil scorer every item takes the fallback path
// and ranking is fully deterministic.
type Engine struct {
	scorer scoring.Scorer
	cfg    Config
}

// NewEngine creates a ranking engine. scorer may be nil.
func NewEngine(scorer scoring.Scorer, cfg Config) *Engine {
	return &Engine{scorer: scorer, cfg: cfg}
}

// Rank scores every active opportunity in the catalog and returns the top
// results sorted by score descending, ties kept in catalog order. Each item
// is scored by the external scorer when available and by the fallback
// heuristic otherwise; the two are never mixed for one item. Ranking is
// all-or-nothing: a cancelled context returns an error and no partial list.
func (e *Engine) Rank(ctx context.Context, profile *types.Profile, catalog []types.Opportunity, topN int) ([]types.MatchResult, error) {
	if profile == nil {
		return nil, fmt.Errorf("%w: nil profile", ErrInvalidInput)
	}
	if topN < 1 {
		return nil, fmt.Errorf("%w: topN must be positive, got %d", ErrInvalidInput, topN)
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("%w: empty catalog", ErrInvalidInput)
	}

	active := make([]types.Opportunity, 0, len(catalog))
	for _, opp := range catalog {
		if opp.IsActive {
			active = append(active, opp)
		}
	}
	if len(active) == 0 {
		return []types.MatchResult{}, nil
	}

	// Each worker writes only its own index, so results need no lock.
	results := make([]types.MatchResult, len(active))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxWorkers)

	for i := range active {
		g.Go(func() error {
			result, err := e.scoreOne(gctx, profile, &active[i])
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if topN < len(results) {
		results = results[:topN]
	}
	return results, nil
}

// scoreOne scores a single opportunity, external first with heuristic
// fallback. Only context-level failures propagate.
func (e *Engine) scoreOne(ctx context.Context, profile *types.Profile, opp *types.Opportunity) (types.MatchResult, error) {
	score, matched := FallbackScore(profile, opp)

	if e.scorer != nil {
		external, err := e.scorer.TryScore(ctx, profile, opp)
		switch {
		case err == nil:
			rationale := external.Rationale
			if rationale == "" {
				rationale = rationaleFor(profile, opp, matched)
			}
			return types.MatchResult{
				Opportunity:   *opp,
				Score:         external.Score,
				MatchedSkills: matched,
				Badges:        badgesFor(external.Score, opp, e.cfg),
				Rationale:     rationale,
				ScoredBy:      ScoredByExternal,
			}, nil
		case errors.Is(err, scoring.ErrUnavailable):
			// fall through to the heuristic path
		default:
			return types.MatchResult{}, err
		}
	}

	return types.MatchResult{
		Opportunity:   *opp,
		Score:         score,
		MatchedSkills: matched,
		Badges:        badgesFor(score, opp, e.cfg),
		Rationale:     rationaleFor(profile, opp, matched),
		ScoredBy:      ScoredByFallback,
	}, nil
}

// Summarize computes overview statistics for a ranked result list.
func Summarize(results []types.MatchResult) types.RankStats {
	if len(results) == 0 {
		return types.RankStats{}
	}

	var scoreSum, stipendSum, high int
	for _, r := range results {
		scoreSum += r.Score
		stipendSum += r.Opportunity.Stipend
		if r.Score > 85 {
			high++
		}
	}
	return types.RankStats{
		AverageScore:   scoreSum / len(results),
		HighMatches:    high,
		AverageStipend: stipendSum / len(results),
	}
}
