package server

import (
	"net/http"

	"github.com/ceylonflix/ceylonflix/internal/metrics"
	"github.com/ceylonflix/ceylonflix/internal/validate"
)

const maxQueryLength = 100

// handleSearch runs a multi-search across movies and shows. People
// results are filtered out by the catalog layer.
// GET /catalog/search?q=
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	var m validate.MultiError
	m.Add(validate.NonEmptyString("q", q))
	m.Add(validate.MaxLength("q", q, maxQueryLength))
	m.Add(validate.NoControlChars("q", q))
	if m.HasErrors() {
		writeValidationError(w, &m)
		return
	}

	items, err := s.catalog.SearchMulti(r.Context(), q)
	if err != nil {
		metrics.CatalogFetches.WithLabelValues("search", "error").Inc()
		upstreamError(w, err)
		return
	}

	metrics.CatalogFetches.WithLabelValues("search", "live").Inc()
	writeJSON(w, http.StatusOK, map[string]any{
		"items":     s.annotate(items),
		"held_tier": s.tiers.Get(r.Context()),
		"count":     len(items),
	})
}
