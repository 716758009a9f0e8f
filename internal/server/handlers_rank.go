package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ananya/intern-match/internal/ranking"
	"github.com/ananya/intern-match/internal/types"
)

// handleRank scores the catalog for the submitted profile and returns the
// ranked matches with summary statistics.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req types.RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	topN := req.TopN
	if topN == 0 {
		topN = s.defaultTopN
	}

	opportunities := req.Catalog
	if len(opportunities) == 0 {
		var err error
		opportunities, err = s.provider.ActiveOpportunities(r.Context())
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "failed to load catalog: "+err.Error())
			return
		}
		if len(opportunities) == 0 {
			s.errorResponse(w, http.StatusBadRequest, "catalog is empty")
			return
		}
	}

	results, err := s.engine.Rank(r.Context(), &req.Profile, opportunities, topN)
	if err != nil {
		if errors.Is(err, ranking.ErrInvalidInput) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "ranking failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.Ranking{
		Results: results,
		Stats:   ranking.Summarize(results),
	})
}
