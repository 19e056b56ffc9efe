package server

import (
	"context"
	"net/http"

	"github.com/ceylonflix/ceylonflix/internal/catalog"
	"github.com/ceylonflix/ceylonflix/internal/entitlement"
	"github.com/ceylonflix/ceylonflix/internal/metrics"
)

// rowDef is one browse row on the home screen.
type rowDef struct {
	Key   string
	Title string
	fetch func(context.Context, Catalog) ([]catalog.Item, error)
}

// browseRows is the home screen layout, in display order.
var browseRows = []rowDef{
	{"trending", "Trending Now", func(ctx context.Context, c Catalog) ([]catalog.Item, error) {
		return c.Trending(ctx)
	}},
	{"popular", "Popular Movies", func(ctx context.Context, c Catalog) ([]catalog.Item, error) {
		return c.PopularMovies(ctx)
	}},
	{"top_rated", "Top Rated", func(ctx context.Context, c Catalog) ([]catalog.Item, error) {
		return c.TopRatedMovies(ctx)
	}},
	{"now_playing", "Now Playing", func(ctx context.Context, c Catalog) ([]catalog.Item, error) {
		return c.NowPlaying(ctx)
	}},
	{"upcoming", "Coming Soon", func(ctx context.Context, c Catalog) ([]catalog.Item, error) {
		return c.Upcoming(ctx)
	}},
	{"bollywood", "Bollywood Hits", func(ctx context.Context, c Catalog) ([]catalog.Item, error) {
		return c.DiscoverByLanguage(ctx, "hi")
	}},
	{"tamil", "Tamil Cinema", func(ctx context.Context, c Catalog) ([]catalog.Item, error) {
		return c.DiscoverByLanguage(ctx, "ta")
	}},
	{"sinhala", "Sinhala Screen", func(ctx context.Context, c Catalog) ([]catalog.Item, error) {
		return c.DiscoverByLanguage(ctx, "si")
	}},
}

func rowByKey(key string) (rowDef, bool) {
	for _, rd := range browseRows {
		if rd.Key == key {
			return rd, true
		}
	}
	return rowDef{}, false
}

// gatedItem is an Item annotated with the tier it requires right now.
type gatedItem struct {
	catalog.Item
	RequiredTier entitlement.Tier `json:"required_tier"`
}

func (s *Server) annotate(items []catalog.Item) []gatedItem {
	now := s.clock()
	out := make([]gatedItem, len(items))
	for i, it := range items {
		out[i] = gatedItem{Item: it, RequiredTier: entitlement.RequiredTier(it.Snapshot(), now)}
	}
	return out
}

type rowResponse struct {
	Key      string      `json:"key"`
	Title    string      `json:"title"`
	Items    []gatedItem `json:"items"`
	Degraded bool        `json:"degraded"`
}

// fetchRow runs one row fetch, falling back to the sample catalog when
// the upstream is unreachable or unconfigured.
func (s *Server) fetchRow(ctx context.Context, rd rowDef) rowResponse {
	items, err := rd.fetch(ctx, s.catalog)
	if err != nil {
		if err != catalog.ErrNotConfigured {
			s.log.Warn("catalog fetch failed", "row", rd.Key, "error", err)
		}
		metrics.CatalogFetches.WithLabelValues(rd.Key, "sample").Inc()
		return rowResponse{Key: rd.Key, Title: rd.Title, Items: s.annotate(catalog.SampleMovies), Degraded: true}
	}
	metrics.CatalogFetches.WithLabelValues(rd.Key, "live").Inc()
	return rowResponse{Key: rd.Key, Title: rd.Title, Items: s.annotate(items)}
}

// handleRows returns every browse row.
// GET /catalog/rows
func (s *Server) handleRows(w http.ResponseWriter, r *http.Request) {
	held := s.tiers.Get(r.Context())

	rows := make([]rowResponse, 0, len(browseRows))
	degraded := false
	for _, rd := range browseRows {
		resp := s.fetchRow(r.Context(), rd)
		degraded = degraded || resp.Degraded
		rows = append(rows, resp)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"rows":      rows,
		"held_tier": held,
		"degraded":  degraded,
	})
}

// handleRow returns a single browse row by key.
// GET /catalog/rows/{row}
func (s *Server) handleRow(w http.ResponseWriter, r *http.Request) {
	rd, ok := rowByKey(r.PathValue("row"))
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "Unknown row")
		return
	}
	resp := s.fetchRow(r.Context(), rd)
	writeJSON(w, http.StatusOK, map[string]any{
		"key":       resp.Key,
		"title":     resp.Title,
		"items":     resp.Items,
		"held_tier": s.tiers.Get(r.Context()),
		"degraded":  resp.Degraded,
	})
}

// handleGenres lists the browsable genres.
// GET /catalog/genres
func (s *Server) handleGenres(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"genres": catalog.MovieGenres})
}

// handleGenre returns titles for one genre.
// GET /catalog/genres/{id}
func (s *Server) handleGenre(w http.ResponseWriter, r *http.Request) {
	id, ok := intPathValue(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", "Genre ID must be numeric")
		return
	}

	items, err := s.catalog.DiscoverByGenre(r.Context(), id)
	if err != nil {
		if err != catalog.ErrNotConfigured {
			s.log.Warn("genre fetch failed", "error", err)
		}
		metrics.CatalogFetches.WithLabelValues("genre", "sample").Inc()
		writeJSON(w, http.StatusOK, map[string]any{
			"items":     s.annotate(catalog.SampleMovies),
			"held_tier": s.tiers.Get(r.Context()),
			"degraded":  true,
		})
		return
	}
	metrics.CatalogFetches.WithLabelValues("genre", "live").Inc()
	writeJSON(w, http.StatusOK, map[string]any{
		"items":     s.annotate(items),
		"held_tier": s.tiers.Get(r.Context()),
		"degraded":  false,
	})
}
