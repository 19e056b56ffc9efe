package server

import (
	"net/http"

	"github.com/ceylonflix/ceylonflix/internal/catalog"
)

// handleHealth is the liveness probe.
// GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "ceylonflix"})
}

// SystemInfo is the response body for GET /system/info.
type SystemInfo struct {
	Version  string          `json:"version"`
	Features map[string]bool `json:"features"`
}

// handleSystemInfo reports version and feature availability so the
// front end can adapt when the catalog runs on sample data.
// GET /system/info
func (s *Server) handleSystemInfo(w http.ResponseWriter, r *http.Request) {
	catalogLive := true
	if _, err := s.catalog.Trending(r.Context()); err == catalog.ErrNotConfigured {
		catalogLive = false
	}

	writeJSON(w, http.StatusOK, SystemInfo{
		Version: s.version,
		Features: map[string]bool{
			"catalog_live":    catalogLive,
			"signed_playback": s.signer != nil,
		},
	})
}
