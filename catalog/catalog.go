// Package catalog exposes read-only browsing of the external title catalog.
// Every operation is tolerant of the upstream API being unavailable: failures
// degrade to empty results and are reported out of band, never surfaced as a
// failed request to the caller.
package catalog

// MediaType discriminates films from series.
type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

// ParseMediaType normalizes a raw type string, defaulting to movie.
func ParseMediaType(raw string) MediaType {
	if raw == string(MediaTypeTV) {
		return MediaTypeTV
	}
	return MediaTypeMovie
}

// Title is one movie or TV-series record sourced from the external catalog.
// It is immutable from this system's perspective and never persisted locally
// except by its display name inside watchlist entries.
type Title struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Overview     string       `json:"overview"`
	PosterPath   string       `json:"poster_path,omitempty"`
	BackdropPath string       `json:"backdrop_path,omitempty"`
	ReleaseDate  string       `json:"release_date,omitempty"`
	VoteAverage  float64      `json:"vote_average"`
	GenreIDs     []int        `json:"genre_ids,omitempty"`
	MediaType    MediaType    `json:"media_type"`
	Runtime      int          `json:"runtime,omitempty"`
	Cast         []CastMember `json:"cast,omitempty"`
}

type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Video is an externally hosted clip attached to a title.
type Video struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// Section is one row of the home screen.
type Section struct {
	Slug  string  `json:"slug"`
	Title string  `json:"title"`
	Items []Title `json:"items"`
}
