package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"movieflow/watchlist"

	"github.com/labstack/echo/v4"
)

const (
	watchlistAddedMessageFmt = "%q was added to your list"
	watchlistDuplicateMsg    = "This title is already in your list"
	watchlistRemovedMsg      = "Title removed from your list"
)

// WatchlistMutationResult mirrors the add/remove outcome shown to the user.
type WatchlistMutationResult struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Entry   *watchlist.Entry `json:"entry,omitempty"`
}

func (s *Server) RegisterWatchlistRoutes(g *echo.Group) {
	g.POST("/watchlist", s.handleAddWatchlistEntry)
	g.GET("/watchlist", s.handleListWatchlist)
	g.GET("/watchlist/contains", s.handleWatchlistContains)
	g.DELETE("/watchlist/:id", s.handleRemoveWatchlistEntry)
}

// handleAddWatchlistEntry godoc
// @Summary Add Watchlist Entry
// @Description Add a title to the authenticated user's watchlist
// @Tags watchlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body AddWatchlistRequest true "Title to add"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Failure 401 {object} APIResponse
// @Router /api/watchlist [post]
func (s *Server) handleAddWatchlistEntry(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req AddWatchlistRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request body", err.Error(), err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	entry, err := s.WatchlistService.Add(c.Request().Context(), userID, req.Title)
	if err != nil {
		// A duplicate add is an expected outcome, not an error response.
		if errors.Is(err, watchlist.ErrAlreadyInList) {
			return writeSuccess(c, http.StatusOK, WatchlistMutationResult{
				Success: false,
				Message: watchlistDuplicateMsg,
			})
		}
		return err
	}

	return writeSuccess(c, http.StatusOK, WatchlistMutationResult{
		Success: true,
		Message: fmt.Sprintf(watchlistAddedMessageFmt, entry.Title),
		Entry:   &entry,
	})
}

// handleListWatchlist godoc
// @Summary List Watchlist
// @Description Get the authenticated user's watchlist, newest first
// @Tags watchlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} APIResponse
// @Failure 401 {object} APIResponse
// @Router /api/watchlist [get]
func (s *Server) handleListWatchlist(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	entries, err := s.WatchlistService.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, entries)
}

// handleWatchlistContains godoc
// @Summary Watchlist Membership
// @Description Check whether a title is in the authenticated user's watchlist
// @Tags watchlist
// @Produce json
// @Security BearerAuth
// @Param title query string true "Title display name"
// @Success 200 {object} APIResponse
// @Failure 401 {object} APIResponse
// @Router /api/watchlist/contains [get]
func (s *Server) handleWatchlistContains(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	contains, err := s.WatchlistService.Contains(c.Request().Context(), userID, c.QueryParam("title"))
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, map[string]bool{
		"contains": contains,
	})
}

// handleRemoveWatchlistEntry godoc
// @Summary Remove Watchlist Entry
// @Description Remove an entry from the authenticated user's watchlist
// @Tags watchlist
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry id"
// @Success 200 {object} APIResponse
// @Failure 401 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /api/watchlist/{id} [delete]
func (s *Server) handleRemoveWatchlistEntry(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := s.WatchlistService.Remove(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, WatchlistMutationResult{
		Success: true,
		Message: watchlistRemovedMsg,
	})
}
