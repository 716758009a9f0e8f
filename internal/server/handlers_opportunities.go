package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/ananya/intern-match/internal/catalog"
	"github.com/ananya/intern-match/internal/db"
	"github.com/ananya/intern-match/internal/types"
)

// handleListOpportunities returns active opportunities, optionally filtered
// by search text, category, and location. When backed by Postgres the
// filtering happens in SQL; file-backed catalogs filter in memory.
func (s *Server) handleListOpportunities(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := 0
	if raw := q.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	var opportunities []types.Opportunity
	var err error
	if s.database != nil {
		opportunities, err = s.database.ListOpportunities(r.Context(), db.OpportunityFilters{
			Search:   q.Get("search"),
			Category: q.Get("category"),
			Location: q.Get("location"),
			Limit:    limit,
		})
	} else {
		opportunities, err = s.provider.ActiveOpportunities(r.Context())
		if err == nil {
			filter := catalog.Filter{
				Search:   q.Get("search"),
				Category: q.Get("category"),
				Location: q.Get("location"),
			}
			opportunities = filter.Apply(opportunities)
			if limit > 0 && len(opportunities) > limit {
				opportunities = opportunities[:limit]
			}
		}
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list opportunities: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"opportunities": opportunities,
		"count":         len(opportunities),
	})
}

// handleGetOpportunity returns one opportunity by ID.
func (s *Server) handleGetOpportunity(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid opportunity ID")
		return
	}

	var opp *types.Opportunity
	if s.database != nil {
		opp, err = s.database.GetOpportunity(r.Context(), id)
	} else {
		var all []types.Opportunity
		all, err = s.provider.ActiveOpportunities(r.Context())
		if err == nil {
			for i := range all {
				if all[i].ID == id {
					opp = &all[i]
					break
				}
			}
		}
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get opportunity: "+err.Error())
		return
	}
	if opp == nil {
		s.errorResponse(w, http.StatusNotFound, "opportunity not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, opp)
}
