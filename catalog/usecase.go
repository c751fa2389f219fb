package catalog

import (
	"context"
	"strings"
)

const missingOverview = "No description available."

// Client is the transport against the external catalog API. Implementations
// return an error on any transport or decode failure; the usecase swallows it
// into an empty result after reporting.
type Client interface {
	Trending(ctx context.Context) ([]Title, error)
	Popular(ctx context.Context) ([]Title, error)
	TopRated(ctx context.Context) ([]Title, error)
	Search(ctx context.Context, query string) ([]Title, error)
	DiscoverByGenre(ctx context.Context, genreID int, mediaType MediaType) ([]Title, error)
	Genres(ctx context.Context, mediaType MediaType) ([]Genre, error)
	Details(ctx context.Context, id int, mediaType MediaType, language string) (Title, error)
	Videos(ctx context.Context, id int, mediaType MediaType, language string) ([]Video, error)
}

// Reporter receives failures that were degraded to empty results.
type Reporter interface {
	Error(err error)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(err error)

func (f ReporterFunc) Error(err error) { f(err) }

type Service interface {
	HomeSections(ctx context.Context) []Section
	Search(ctx context.Context, query string) []Title
	DiscoverByGenre(ctx context.Context, genreID int, mediaType MediaType) []Title
	Genres(ctx context.Context, mediaType MediaType) []Genre
	Details(ctx context.Context, id int, mediaType MediaType) (Title, bool)
	Trailer(ctx context.Context, id int, mediaType MediaType) string
}

type Usecase struct {
	client           Client
	reporter         Reporter
	language         string
	fallbackLanguage string
}

func NewUsecase(client Client, reporter Reporter, language, fallbackLanguage string) *Usecase {
	if reporter == nil {
		reporter = ReporterFunc(func(error) {})
	}
	return &Usecase{
		client:           client,
		reporter:         reporter,
		language:         language,
		fallbackLanguage: fallbackLanguage,
	}
}

type sectionSpec struct {
	slug    string
	title   string
	genreID int
}

// The fixed home rows: three chart rows and five genre rows.
var homeSections = []sectionSpec{
	{slug: "trending", title: "Trending Now"},
	{slug: "popular", title: "Popular"},
	{slug: "toprated", title: "Top Rated"},
	{slug: "action", title: "Action", genreID: 28},
	{slug: "comedy", title: "Comedy", genreID: 35},
	{slug: "horror", title: "Horror", genreID: 27},
	{slug: "romance", title: "Romance", genreID: 10749},
	{slug: "documentary", title: "Documentary", genreID: 99},
}

// HomeSections returns every home row. A row whose upstream call fails comes
// back with empty items; the other rows are unaffected.
func (uc *Usecase) HomeSections(ctx context.Context) []Section {
	sections := make([]Section, 0, len(homeSections))
	for _, spec := range homeSections {
		var (
			items []Title
			err   error
		)
		switch spec.slug {
		case "trending":
			items, err = uc.client.Trending(ctx)
		case "popular":
			items, err = uc.client.Popular(ctx)
		case "toprated":
			items, err = uc.client.TopRated(ctx)
		default:
			items, err = uc.client.DiscoverByGenre(ctx, spec.genreID, MediaTypeMovie)
		}
		if err != nil {
			uc.reporter.Error(err)
			items = nil
		}
		sections = append(sections, Section{
			Slug:  spec.slug,
			Title: spec.title,
			Items: emptyIfNil(items),
		})
	}
	return sections
}

// Search returns matching titles. A blank query returns an empty list without
// touching the network.
func (uc *Usecase) Search(ctx context.Context, query string) []Title {
	if strings.TrimSpace(query) == "" {
		return []Title{}
	}
	items, err := uc.client.Search(ctx, query)
	if err != nil {
		uc.reporter.Error(err)
		return []Title{}
	}
	return emptyIfNil(items)
}

func (uc *Usecase) DiscoverByGenre(ctx context.Context, genreID int, mediaType MediaType) []Title {
	items, err := uc.client.DiscoverByGenre(ctx, genreID, mediaType)
	if err != nil {
		uc.reporter.Error(err)
		return []Title{}
	}
	return emptyIfNil(items)
}

func (uc *Usecase) Genres(ctx context.Context, mediaType MediaType) []Genre {
	genres, err := uc.client.Genres(ctx, mediaType)
	if err != nil {
		uc.reporter.Error(err)
		return []Genre{}
	}
	if genres == nil {
		genres = []Genre{}
	}
	return genres
}

// Details fetches one title enriched with cast and runtime. When the primary
// locale carries no overview the fallback locale's overview is used, and a
// fixed placeholder when both are empty. The second return is false when the
// title could not be fetched at all.
func (uc *Usecase) Details(ctx context.Context, id int, mediaType MediaType) (Title, bool) {
	title, err := uc.client.Details(ctx, id, mediaType, uc.language)
	if err != nil {
		uc.reporter.Error(err)
		return Title{}, false
	}

	if title.Overview == "" {
		fallback, err := uc.client.Details(ctx, id, mediaType, uc.fallbackLanguage)
		if err != nil {
			uc.reporter.Error(err)
		} else {
			title.Overview = fallback.Overview
		}
		if title.Overview == "" {
			title.Overview = missingOverview
		}
	}

	return title, true
}

// Trailer returns the embed URL of the first YouTube-hosted video tagged
// "Trailer", trying the primary locale first and the fallback locale second.
// Empty string when no trailer exists or the upstream calls fail.
func (uc *Usecase) Trailer(ctx context.Context, id int, mediaType MediaType) string {
	for _, language := range []string{uc.language, uc.fallbackLanguage} {
		videos, err := uc.client.Videos(ctx, id, mediaType, language)
		if err != nil {
			uc.reporter.Error(err)
			continue
		}
		for _, v := range videos {
			if v.Site == "YouTube" && v.Type == "Trailer" {
				return "https://www.youtube.com/embed/" + v.Key
			}
		}
	}
	return ""
}

func emptyIfNil(items []Title) []Title {
	if items == nil {
		return []Title{}
	}
	return items
}
