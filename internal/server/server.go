// Package server implements the public HTTP API: catalog browsing,
// tier management, and the gated playback handoff.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ceylonflix/ceylonflix/internal/catalog"
	"github.com/ceylonflix/ceylonflix/internal/playback"
	"github.com/ceylonflix/ceylonflix/internal/tierstore"
	"github.com/ceylonflix/ceylonflix/internal/validate"
)

// Catalog is the metadata source the handlers consume. Satisfied by
// *catalog.Client in production and by a fake in tests.
type Catalog interface {
	Trending(ctx context.Context) ([]catalog.Item, error)
	PopularMovies(ctx context.Context) ([]catalog.Item, error)
	TopRatedMovies(ctx context.Context) ([]catalog.Item, error)
	NowPlaying(ctx context.Context) ([]catalog.Item, error)
	Upcoming(ctx context.Context) ([]catalog.Item, error)
	DiscoverByLanguage(ctx context.Context, lang string) ([]catalog.Item, error)
	DiscoverByGenre(ctx context.Context, genreID int) ([]catalog.Item, error)
	MovieDetail(ctx context.Context, id int) (*catalog.MovieDetail, error)
	TVDetail(ctx context.Context, id int) (*catalog.TVDetail, error)
	SearchMulti(ctx context.Context, query string) ([]catalog.Item, error)
}

// Server holds the handler dependencies.
type Server struct {
	log     *slog.Logger
	catalog Catalog
	tiers   *tierstore.Store
	// signer is nil when STREAM_HMAC_SECRET is unset; playback
	// references then go out unsigned.
	signer  *playback.Signer
	version string
	clock   func() time.Time
}

// New creates a Server. signer may be nil.
func New(log *slog.Logger, cat Catalog, tiers *tierstore.Store, signer *playback.Signer, version string) *Server {
	return &Server{
		log:     log,
		catalog: cat,
		tiers:   tiers,
		signer:  signer,
		version: version,
		clock:   time.Now,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, map[string]string{"error": code, "message": msg})
}

func writeValidationError(w http.ResponseWriter, m *validate.MultiError) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error":  "validation_error",
		"fields": m.Errors,
	})
}

func intPathValue(r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(r.PathValue(name))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// upstreamError maps catalog client failures that have no sample
// fallback to HTTP responses.
func upstreamError(w http.ResponseWriter, err error) {
	switch {
	case catalog.IsNotFound(err):
		writeError(w, http.StatusNotFound, "not_found", "Title not found")
	case err == catalog.ErrNotConfigured:
		writeError(w, http.StatusServiceUnavailable, "catalog_unavailable", "Catalog source is not configured")
	case err == catalog.ErrRateLimited:
		writeError(w, http.StatusServiceUnavailable, "upstream_rate_limited", "Catalog source is rate limiting")
	case err == catalog.ErrUnauthorized:
		writeError(w, http.StatusBadGateway, "upstream_auth", "Catalog source rejected credentials")
	default:
		writeError(w, http.StatusBadGateway, "upstream_error", "Catalog source request failed")
	}
}
