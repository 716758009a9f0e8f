package server

import (
	"encoding/json"
	"net/http"

	"github.com/ananya/intern-match/internal/gap"
	"github.com/ananya/intern-match/internal/taxonomy"
	"github.com/ananya/intern-match/internal/types"
)

// handleAnalyzeGaps compares the submitted profile against target category
// requirements and returns per-category reports plus learning priorities.
func (s *Server) handleAnalyzeGaps(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	analysis := gap.Analyze(&req.Profile, req.Categories, s.gapCfg)
	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleListCategories returns the taxonomy's known job categories.
func (s *Server) handleListCategories(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string][]string{
		"categories": taxonomy.Categories(),
	})
}
