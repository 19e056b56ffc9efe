package server

import (
	"net/http"

	"github.com/ceylonflix/ceylonflix/internal/entitlement"
)

// handleMovieDetail returns the full movie record with cast and similar
// titles, each annotated with the tier it currently requires.
// GET /catalog/movie/{id}
func (s *Server) handleMovieDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := intPathValue(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", "Title ID must be numeric")
		return
	}

	md, err := s.catalog.MovieDetail(r.Context(), id)
	if err != nil {
		upstreamError(w, err)
		return
	}

	similar := s.annotate(md.Similar)
	md.Similar = nil

	writeJSON(w, http.StatusOK, map[string]any{
		"detail":        md,
		"required_tier": entitlement.RequiredTier(md.Item.Snapshot(), s.clock()),
		"held_tier":     s.tiers.Get(r.Context()),
		"similar":       similar,
	})
}

// handleTVDetail returns the full TV record with its season list.
// GET /catalog/tv/{id}
func (s *Server) handleTVDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := intPathValue(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", "Title ID must be numeric")
		return
	}

	td, err := s.catalog.TVDetail(r.Context(), id)
	if err != nil {
		upstreamError(w, err)
		return
	}

	similar := s.annotate(td.Similar)
	td.Similar = nil

	writeJSON(w, http.StatusOK, map[string]any{
		"detail":        td,
		"required_tier": entitlement.RequiredTier(td.Item.Snapshot(), s.clock()),
		"held_tier":     s.tiers.Get(r.Context()),
		"similar":       similar,
	})
}
