package server

import (
	"net/http"

	"github.com/ceylonflix/ceylonflix/internal/metrics"
)

// Routes builds the service mux.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	// Health + system
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /system/info", s.handleSystemInfo)
	mux.Handle("GET /metrics", metrics.Handler())

	// Catalog browsing
	mux.HandleFunc("GET /catalog/rows", s.handleRows)
	mux.HandleFunc("GET /catalog/rows/{row}", s.handleRow)
	mux.HandleFunc("GET /catalog/genres", s.handleGenres)
	mux.HandleFunc("GET /catalog/genres/{id}", s.handleGenre)
	mux.HandleFunc("GET /catalog/movie/{id}", s.handleMovieDetail)
	mux.HandleFunc("GET /catalog/tv/{id}", s.handleTVDetail)
	mux.HandleFunc("GET /catalog/search", s.handleSearch)

	// Playback gate
	mux.HandleFunc("GET /watch/{kind}/{id}", s.handleWatch)

	// Viewer tier
	mux.HandleFunc("GET /tier", s.handleGetTier)
	mux.HandleFunc("PUT /tier", s.handleSetTier)

	// Plans
	mux.HandleFunc("GET /plans", s.handlePlans)

	return mux
}
