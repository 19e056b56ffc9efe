package server

import (
	"encoding/json"
	"net/http"

	"github.com/ceylonflix/ceylonflix/internal/entitlement"
	"github.com/ceylonflix/ceylonflix/internal/metrics"
)

// handleGetTier returns the currently held tier.
// GET /tier
func (s *Server) handleGetTier(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"tier": s.tiers.Get(r.Context()),
	})
}

// handleSetTier switches the held tier. Unknown tiers are rejected and
// the stored value is left untouched.
// PUT /tier
func (s *Server) handleSetTier(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Tier string `json:"tier"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid JSON")
		return
	}

	tier, err := entitlement.ParseTier(input.Tier)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_tier", "Tier must be one of free, basic, standard, premium")
		return
	}

	s.tiers.Set(r.Context(), tier)
	metrics.TierChanges.WithLabelValues(string(tier)).Inc()
	writeJSON(w, http.StatusOK, map[string]any{"tier": tier})
}
