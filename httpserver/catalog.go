package httpserver

import (
	"net/http"
	"strconv"

	"movieflow/catalog"
	"movieflow/errs"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterCatalogRoutes(g *echo.Group) {
	g.GET("/catalog/home", s.handleHomeSections)
	g.GET("/catalog/search", s.handleSearch)
	g.GET("/catalog/genres/:type", s.handleGenres)
	g.GET("/catalog/discover/:type", s.handleDiscover)
	g.GET("/catalog/titles/:type/:id", s.handleTitleDetails)
	g.GET("/catalog/titles/:type/:id/trailer", s.handleTrailer)
}

// handleHomeSections godoc
// @Summary Home Sections
// @Description Get the curated home page sections
// @Tags catalog
// @Produce json
// @Success 200 {object} APIResponse
// @Router /api/catalog/home [get]
func (s *Server) handleHomeSections(c echo.Context) error {
	sections := s.CatalogService.HomeSections(c.Request().Context())
	return writeList(c, http.StatusOK, sections)
}

// handleSearch godoc
// @Summary Search Titles
// @Description Search movies and series by name
// @Tags catalog
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} APIResponse
// @Router /api/catalog/search [get]
func (s *Server) handleSearch(c echo.Context) error {
	titles := s.CatalogService.Search(c.Request().Context(), c.QueryParam("q"))
	return writeList(c, http.StatusOK, titles)
}

// handleGenres godoc
// @Summary List Genres
// @Description Get the genre list for movies or series
// @Tags catalog
// @Produce json
// @Param type path string true "Media type (movie or tv)"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Router /api/catalog/genres/{type} [get]
func (s *Server) handleGenres(c echo.Context) error {
	mediaType := catalog.ParseMediaType(c.Param("type"))

	genres := s.CatalogService.Genres(c.Request().Context(), mediaType)
	return writeList(c, http.StatusOK, genres)
}

// handleDiscover godoc
// @Summary Discover By Genre
// @Description Get titles of a media type filtered by genre
// @Tags catalog
// @Produce json
// @Param type path string true "Media type (movie or tv)"
// @Param genre query int true "Genre id"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Router /api/catalog/discover/{type} [get]
func (s *Server) handleDiscover(c echo.Context) error {
	mediaType := catalog.ParseMediaType(c.Param("type"))
	genreID, err := strconv.Atoi(c.QueryParam("genre"))
	if err != nil {
		return errs.Errorf(errs.EINVALID, "genre must be a number")
	}

	titles := s.CatalogService.DiscoverByGenre(c.Request().Context(), genreID, mediaType)
	return writeList(c, http.StatusOK, titles)
}

// handleTitleDetails godoc
// @Summary Title Details
// @Description Get details for a movie or series, including cast
// @Tags catalog
// @Produce json
// @Param type path string true "Media type (movie or tv)"
// @Param id path int true "Title id"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /api/catalog/titles/{type}/{id} [get]
func (s *Server) handleTitleDetails(c echo.Context) error {
	mediaType := catalog.ParseMediaType(c.Param("type"))
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errs.Errorf(errs.EINVALID, "id must be a number")
	}

	title, ok := s.CatalogService.Details(c.Request().Context(), id, mediaType)
	if !ok {
		return errs.Errorf(errs.ENOTFOUND, "title not found")
	}
	return writeSuccess(c, http.StatusOK, title)
}

// handleTrailer godoc
// @Summary Title Trailer
// @Description Get the youtube embed url for a title's trailer
// @Tags catalog
// @Produce json
// @Param type path string true "Media type (movie or tv)"
// @Param id path int true "Title id"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /api/catalog/titles/{type}/{id}/trailer [get]
func (s *Server) handleTrailer(c echo.Context) error {
	mediaType := catalog.ParseMediaType(c.Param("type"))
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errs.Errorf(errs.EINVALID, "id must be a number")
	}

	url := s.CatalogService.Trailer(c.Request().Context(), id, mediaType)
	if url == "" {
		return errs.Errorf(errs.ENOTFOUND, "no trailer available")
	}
	return writeSuccess(c, http.StatusOK, map[string]string{
		"url": url,
	})
}
