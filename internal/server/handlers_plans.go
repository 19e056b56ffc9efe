package server

import (
	"net/http"

	"github.com/ceylonflix/ceylonflix/internal/plans"
)

// handlePlans returns the plan catalog for the pricing page.
// GET /plans
func (s *Server) handlePlans(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"plans":           plans.All,
		"payment_methods": plans.PaymentMethods,
		"held_tier":       s.tiers.Get(r.Context()),
	})
}
