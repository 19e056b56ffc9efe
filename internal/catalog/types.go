package catalog

import "github.com/ceylonflix/ceylonflix/internal/entitlement"

// Kind discriminates the two media shapes the provider returns. Movie
// payloads carry title/release_date, TV payloads carry name/first_air_date;
// both are normalized into Item at the decode boundary so nothing outside
// this package sniffs fields.
type Kind string

const (
	KindMovie Kind = "movie"
	KindTV    Kind = "tv"
)

// Item is one catalog entry in normalized form: the shared metadata shape
// for both kinds. Date holds the release date for movies and the first air
// date for shows, empty when the provider omitted it.
type Item struct {
	Kind         Kind    `json:"kind"`
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	Date         string  `json:"date,omitempty"`
	Rating       float64 `json:"rating"`
	VoteCount    int     `json:"vote_count"`
	Popularity   float64 `json:"popularity"`
	GenreIDs     []int   `json:"genre_ids,omitempty"`
	Language     string  `json:"language,omitempty"`
}

// Snapshot extracts the fields the entitlement evaluator needs.
func (i Item) Snapshot() entitlement.Snapshot {
	return entitlement.Snapshot{
		Rating:     i.Rating,
		Popularity: i.Popularity,
		Date:       i.Date,
	}
}

// CastMember is one credited actor on a detail page.
type CastMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

// Season is one season of a show, as listed on the TV detail page.
type Season struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	SeasonNumber int    `json:"season_number"`
	EpisodeCount int    `json:"episode_count"`
	PosterPath   string `json:"poster_path"`
	AirDate      string `json:"air_date,omitempty"`
}

// MovieDetail is the full movie detail payload.
type MovieDetail struct {
	Item
	Genres  []Genre      `json:"genres"`
	Runtime int          `json:"runtime"` // minutes
	Tagline string       `json:"tagline,omitempty"`
	Status  string       `json:"status,omitempty"`
	Cast    []CastMember `json:"cast,omitempty"`
	Similar []Item       `json:"similar,omitempty"`
}

// TVDetail is the full show detail payload. Seasons with season_number 0
// (specials) are filtered out at decode.
type TVDetail struct {
	Item
	Genres           []Genre      `json:"genres"`
	NumberOfSeasons  int          `json:"number_of_seasons"`
	NumberOfEpisodes int          `json:"number_of_episodes"`
	Seasons          []Season     `json:"seasons,omitempty"`
	Tagline          string       `json:"tagline,omitempty"`
	Status           string       `json:"status,omitempty"`
	Cast             []CastMember `json:"cast,omitempty"`
	Similar          []Item       `json:"similar,omitempty"`
}

// Genre is a provider genre id/name pair.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieGenres is the curated genre list the browse surface offers.
var MovieGenres = []Genre{
	{ID: 28, Name: "Action"},
	{ID: 12, Name: "Adventure"},
	{ID: 16, Name: "Animation"},
	{ID: 35, Name: "Comedy"},
	{ID: 80, Name: "Crime"},
	{ID: 18, Name: "Drama"},
	{ID: 14, Name: "Fantasy"},
	{ID: 27, Name: "Horror"},
	{ID: 10749, Name: "Romance"},
	{ID: 878, Name: "Sci-Fi"},
	{ID: 53, Name: "Thriller"},
	{ID: 10752, Name: "War"},
}

const (
	imageBase   = "https://image.tmdb.org/t/p"
	placeholder = "/placeholder.svg"
)

// ImageURL returns the full poster/profile URL at the given size
// (e.g. "w185", "w500"), or a placeholder when the path is empty.
func ImageURL(path, size string) string {
	if path == "" {
		return placeholder
	}
	if size == "" {
		size = "w500"
	}
	return imageBase + "/" + size + path
}

// BackdropURL returns the full-resolution backdrop URL, or a placeholder
// when the path is empty.
func BackdropURL(path string) string {
	if path == "" {
		return placeholder
	}
	return imageBase + "/original" + path
}
