// Package catalog is the TMDB (The Movie Database) access layer: discovery
// rows, detail pages, and search for movies and TV shows.
//
// Required credential: a TMDB v3 API key — obtain from
// https://www.themoviedb.org/settings/api
//
// Rate limit: TMDB allows 50 requests/second on the free tier. Discovery
// rows are served through a TTL cache so steady-state browse traffic costs
// a handful of upstream calls every ten minutes.
//
// Failures are returned as typed errors, never swallowed: the HTTP layer
// decides whether to fall back to the built-in sample catalog.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const tmdbBaseURL = "https://api.themoviedb.org/3"

// Sentinel errors for the failure modes callers branch on.
var (
	// ErrNotConfigured means no API key was supplied; the caller should
	// fall back to sample data rather than retry.
	ErrNotConfigured = errors.New("tmdb: api key not configured")
	// ErrUnauthorized means the key was rejected.
	ErrUnauthorized = errors.New("tmdb: invalid API key")
	// ErrRateLimited means TMDB returned 429.
	ErrRateLimited = errors.New("tmdb: rate limited")
)

// StatusError reports any other non-200 response.
type StatusError struct {
	Code int
	Path string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb: HTTP %d for %s", e.Code, e.Path)
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// Client is a TMDB API client. Create with NewClient.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *rowCache
}

// NewClient creates a Client. An empty apiKey is allowed — every call will
// then return ErrNotConfigured, which callers map to sample data.
// cacheTTL bounds the staleness of discovery rows; zero disables caching.
func NewClient(apiKey string, cacheTTL time.Duration) *Client {
	return NewClientWithBaseURL(apiKey, tmdbBaseURL, cacheTTL)
}

// NewClientWithBaseURL is NewClient with an explicit API root. Tests point
// it at a local httptest server.
func NewClientWithBaseURL(apiKey, baseURL string, cacheTTL time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: newRowCache(cacheTTL),
	}
}

// Trending returns this week's trending movies and shows, mixed.
func (c *Client) Trending(ctx context.Context) ([]Item, error) {
	return c.row(ctx, "trending", "/trending/all/week", nil, kindFromMediaType)
}

// PopularMovies returns the current popular-movies row.
func (c *Client) PopularMovies(ctx context.Context) ([]Item, error) {
	return c.row(ctx, "popular", "/movie/popular", nil, alwaysMovie)
}

// TopRatedMovies returns the all-time top-rated row.
func (c *Client) TopRatedMovies(ctx context.Context) ([]Item, error) {
	return c.row(ctx, "top_rated", "/movie/top_rated", nil, alwaysMovie)
}

// NowPlaying returns movies currently in theatres.
func (c *Client) NowPlaying(ctx context.Context) ([]Item, error) {
	return c.row(ctx, "now_playing", "/movie/now_playing", nil, alwaysMovie)
}

// Upcoming returns movies releasing soon.
func (c *Client) Upcoming(ctx context.Context) ([]Item, error) {
	return c.row(ctx, "upcoming", "/movie/upcoming", nil, alwaysMovie)
}

// DiscoverByLanguage returns the most popular movies in an original
// language ("hi" Bollywood, "ta" Tamil, "si" Sinhala rows).
func (c *Client) DiscoverByLanguage(ctx context.Context, lang string) ([]Item, error) {
	params := url.Values{}
	params.Set("with_original_language", lang)
	params.Set("sort_by", "popularity.desc")
	return c.row(ctx, "lang:"+lang, "/discover/movie", params, alwaysMovie)
}

// DiscoverByGenre returns the most popular movies in a TMDB genre.
func (c *Client) DiscoverByGenre(ctx context.Context, genreID int) ([]Item, error) {
	params := url.Values{}
	params.Set("with_genres", strconv.Itoa(genreID))
	params.Set("sort_by", "popularity.desc")
	return c.row(ctx, "genre:"+strconv.Itoa(genreID), "/discover/movie", params, alwaysMovie)
}

// MovieDetail fetches a full movie detail page, including cast and similar
// titles. Details are not cached: they carry the metadata the entitlement
// gate evaluates, and the gate re-evaluates on every request.
func (c *Client) MovieDetail(ctx context.Context, id int) (*MovieDetail, error) {
	params := url.Values{}
	params.Set("append_to_response", "credits,similar")

	var raw tmdbDetail
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", id), params, &raw); err != nil {
		return nil, err
	}

	d := &MovieDetail{
		Item:    raw.item(KindMovie),
		Genres:  raw.Genres,
		Runtime: raw.Runtime,
		Tagline: raw.Tagline,
		Status:  raw.Status,
		Cast:    raw.cast(),
		Similar: raw.similar(alwaysMovie),
	}
	return d, nil
}

// TVDetail fetches a full show detail page, including seasons, cast, and
// similar shows.
func (c *Client) TVDetail(ctx context.Context, id int) (*TVDetail, error) {
	params := url.Values{}
	params.Set("append_to_response", "credits,similar")

	var raw tmdbDetail
	if err := c.get(ctx, fmt.Sprintf("/tv/%d", id), params, &raw); err != nil {
		return nil, err
	}

	d := &TVDetail{
		Item:             raw.item(KindTV),
		Genres:           raw.Genres,
		NumberOfSeasons:  raw.NumberOfSeasons,
		NumberOfEpisodes: raw.NumberOfEpisodes,
		Seasons:          raw.seasons(),
		Tagline:          raw.Tagline,
		Status:           raw.Status,
		Cast:             raw.cast(),
		Similar:          raw.similar(alwaysTV),
	}
	return d, nil
}

// SearchMulti searches movies and shows by title. People and other result
// types are filtered out. Results are never cached.
func (c *Client) SearchMulti(ctx context.Context, query string) ([]Item, error) {
	params := url.Values{}
	params.Set("query", query)

	var raw tmdbPage
	if err := c.get(ctx, "/search/multi", params, &raw); err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(raw.Results))
	for _, r := range raw.Results {
		kind, ok := kindFromMediaType(r)
		if !ok {
			continue
		}
		items = append(items, r.item(kind))
	}
	return items, nil
}

// row fetches a cached discovery row.
func (c *Client) row(ctx context.Context, cacheKey, path string, params url.Values, classify classifier) ([]Item, error) {
	if items, ok := c.cache.get(cacheKey); ok {
		return items, nil
	}

	var raw tmdbPage
	if err := c.get(ctx, path, params, &raw); err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(raw.Results))
	for _, r := range raw.Results {
		kind, ok := classify(r)
		if !ok {
			continue
		}
		items = append(items, r.item(kind))
	}

	c.cache.put(cacheKey, items)
	return items, nil
}

// get performs a GET request to the TMDB API and decodes the JSON response.
func (c *Client) get(ctx context.Context, path string, params url.Values, dst interface{}) error {
	if c.apiKey == "" {
		return ErrNotConfigured
	}

	q := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("api_key", c.apiKey)

	reqURL := c.baseURL + path + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("tmdb: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		return &StatusError{Code: resp.StatusCode, Path: path}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("tmdb: decode response: %w", err)
	}
	return nil
}

// ── Wire shapes ───────────────────────────────────────────────────────────────
//
// TMDB returns movie-shaped objects (title, release_date) and show-shaped
// objects (name, first_air_date). Both decode into tmdbEntry; item()
// normalizes into the exported tagged Item. This is the only place the
// title/name duality exists.

type tmdbEntry struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	MediaType    string  `json:"media_type"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	Popularity   float64 `json:"popularity"`
	GenreIDs     []int   `json:"genre_ids"`
	Language     string  `json:"original_language"`
}

func (e tmdbEntry) item(kind Kind) Item {
	title := e.Title
	date := e.ReleaseDate
	if kind == KindTV {
		title = e.Name
		date = e.FirstAirDate
	}
	return Item{
		Kind:         kind,
		ID:           e.ID,
		Title:        title,
		Overview:     e.Overview,
		PosterPath:   e.PosterPath,
		BackdropPath: e.BackdropPath,
		Date:         date,
		Rating:       e.VoteAverage,
		VoteCount:    e.VoteCount,
		Popularity:   e.Popularity,
		GenreIDs:     e.GenreIDs,
		Language:     e.Language,
	}
}

type tmdbPage struct {
	Results []tmdbEntry `json:"results"`
}

// tmdbDetail is the movie/tv detail wire shape with appended credits and
// similar results.
type tmdbDetail struct {
	tmdbEntry
	Genres           []Genre `json:"genres"`
	Runtime          int     `json:"runtime"`
	Tagline          string  `json:"tagline"`
	Status           string  `json:"status"`
	NumberOfSeasons  int     `json:"number_of_seasons"`
	NumberOfEpisodes int     `json:"number_of_episodes"`
	RawSeasons       []Season `json:"seasons"`
	Credits          struct {
		Cast []CastMember `json:"cast"`
	} `json:"credits"`
	SimilarPage struct {
		Results []tmdbEntry `json:"results"`
	} `json:"similar"`
}

func (d tmdbDetail) cast() []CastMember {
	cast := d.Credits.Cast
	if len(cast) > 8 {
		cast = cast[:8]
	}
	return cast
}

func (d tmdbDetail) seasons() []Season {
	out := make([]Season, 0, len(d.RawSeasons))
	for _, s := range d.RawSeasons {
		if s.SeasonNumber > 0 {
			out = append(out, s)
		}
	}
	return out
}

func (d tmdbDetail) similar(classify classifier) []Item {
	results := d.SimilarPage.Results
	if len(results) > 12 {
		results = results[:12]
	}
	items := make([]Item, 0, len(results))
	for _, r := range results {
		if kind, ok := classify(r); ok {
			items = append(items, r.item(kind))
		}
	}
	return items
}

// classifier decides an entry's Kind, or rejects it (people in multi
// results).
type classifier func(tmdbEntry) (Kind, bool)

func alwaysMovie(tmdbEntry) (Kind, bool) { return KindMovie, true }
func alwaysTV(tmdbEntry) (Kind, bool)    { return KindTV, true }

func kindFromMediaType(e tmdbEntry) (Kind, bool) {
	switch e.MediaType {
	case "movie":
		return KindMovie, true
	case "tv":
		return KindTV, true
	default:
		return "", false
	}
}
