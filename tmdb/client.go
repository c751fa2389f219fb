// Package tmdb implements catalog.Client against a TMDB-compatible API.
//
// Every call is an independent GET authenticated by a static api_key query
// parameter. There are no retries and no caching; a failed call is the
// caller's to degrade.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"movieflow/catalog"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	defaultTimeout = 10 * time.Second

	// Detail responses carry the full credits list; only the top of the
	// bill is kept.
	maxCast = 10
)

type Client struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the HTTP client, used by tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL points the client at a different API root.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// NewClient builds a client. language is the default list language; detail
// and video lookups take their language per call.
func NewClient(apiKey, language string, opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		language:   language,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// titleEntry is the raw catalog record. Movies carry title/release_date,
// series carry name/first_air_date; reshaping folds the pairs together.
type titleEntry struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int   `json:"genre_ids"`
	MediaType    string  `json:"media_type"`
	Runtime      int     `json:"runtime"`
	Credits      *struct {
		Cast []struct {
			Name      string `json:"name"`
			Character string `json:"character"`
		} `json:"cast"`
	} `json:"credits"`
}

type titleList struct {
	Results []titleEntry `json:"results"`
}

type genreList struct {
	Genres []catalog.Genre `json:"genres"`
}

type videoList struct {
	Results []catalog.Video `json:"results"`
}

func (c *Client) Trending(ctx context.Context) ([]catalog.Title, error) {
	return c.fetchTitles(ctx, "/trending/all/week", nil, "")
}

func (c *Client) Popular(ctx context.Context) ([]catalog.Title, error) {
	return c.fetchTitles(ctx, "/movie/popular", nil, catalog.MediaTypeMovie)
}

func (c *Client) TopRated(ctx context.Context) ([]catalog.Title, error) {
	return c.fetchTitles(ctx, "/movie/top_rated", nil, catalog.MediaTypeMovie)
}

func (c *Client) Search(ctx context.Context, query string) ([]catalog.Title, error) {
	return c.fetchTitles(ctx, "/search/multi", url.Values{"query": {query}}, "")
}

func (c *Client) DiscoverByGenre(ctx context.Context, genreID int, mediaType catalog.MediaType) ([]catalog.Title, error) {
	params := url.Values{"with_genres": {strconv.Itoa(genreID)}}
	return c.fetchTitles(ctx, "/discover/"+string(mediaType), params, mediaType)
}

func (c *Client) Genres(ctx context.Context, mediaType catalog.MediaType) ([]catalog.Genre, error) {
	var out genreList
	if err := c.get(ctx, "/genre/"+string(mediaType)+"/list", nil, c.language, &out); err != nil {
		return nil, err
	}
	return out.Genres, nil
}

func (c *Client) Details(ctx context.Context, id int, mediaType catalog.MediaType, language string) (catalog.Title, error) {
	params := url.Values{"append_to_response": {"credits"}}
	path := fmt.Sprintf("/%s/%d", mediaType, id)

	var entry titleEntry
	if err := c.get(ctx, path, params, language, &entry); err != nil {
		return catalog.Title{}, err
	}
	return toTitle(entry, mediaType), nil
}

func (c *Client) Videos(ctx context.Context, id int, mediaType catalog.MediaType, language string) ([]catalog.Video, error) {
	path := fmt.Sprintf("/%s/%d/videos", mediaType, id)

	var out videoList
	if err := c.get(ctx, path, nil, language, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func (c *Client) fetchTitles(ctx context.Context, path string, params url.Values, mediaType catalog.MediaType) ([]catalog.Title, error) {
	var out titleList
	if err := c.get(ctx, path, params, c.language, &out); err != nil {
		return nil, err
	}

	titles := make([]catalog.Title, 0, len(out.Results))
	for _, entry := range out.Results {
		titles = append(titles, toTitle(entry, mediaType))
	}
	return titles, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, language string, out interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	if language != "" {
		params.Set("language", language)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("tmdb: build request %s: %w", path, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb: get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("tmdb: get %s: unexpected status %s", path, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("tmdb: decode %s: %w", path, err)
	}
	return nil
}

func toTitle(entry titleEntry, requested catalog.MediaType) catalog.Title {
	name := entry.Title
	if name == "" {
		name = entry.Name
	}
	release := entry.ReleaseDate
	if release == "" {
		release = entry.FirstAirDate
	}

	mediaType := requested
	if entry.MediaType != "" {
		mediaType = catalog.ParseMediaType(entry.MediaType)
	} else if mediaType == "" {
		mediaType = catalog.MediaTypeMovie
	}

	title := catalog.Title{
		ID:           entry.ID,
		Name:         name,
		Overview:     entry.Overview,
		PosterPath:   entry.PosterPath,
		BackdropPath: entry.BackdropPath,
		ReleaseDate:  release,
		VoteAverage:  entry.VoteAverage,
		GenreIDs:     entry.GenreIDs,
		MediaType:    mediaType,
		Runtime:      entry.Runtime,
	}

	if entry.Credits != nil {
		cast := entry.Credits.Cast
		if len(cast) > maxCast {
			cast = cast[:maxCast]
		}
		for _, member := range cast {
			title.Cast = append(title.Cast, catalog.CastMember{
				Name:      member.Name,
				Character: member.Character,
			})
		}
	}

	return title
}
