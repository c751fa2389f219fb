package httpserver

import (
	"errors"
	"net/http"

	"movieflow/rating"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterRatingRoutes(g *echo.Group) {
	g.POST("/ratings", s.handleRate)
	g.GET("/ratings", s.handleGetRating)
	g.POST("/comments", s.handleAddComment)
	g.GET("/comments", s.handleListComments)
	g.DELETE("/comments/:id", s.handleDeleteComment)
}

// handleRate godoc
// @Summary Rate Title
// @Description Toggle the authenticated user's like/dislike for a title
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body RateRequest true "Rating payload"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Failure 401 {object} APIResponse
// @Router /api/ratings [post]
func (s *Server) handleRate(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req RateRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request body", err.Error(), err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	outcome, err := s.RatingService.Rate(c.Request().Context(), userID, req.Title, rating.Kind(req.Kind))
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, map[string]string{
		"outcome": string(outcome),
	})
}

// handleGetRating godoc
// @Summary Get Rating
// @Description Get the authenticated user's rating for a title, if any
// @Tags ratings
// @Produce json
// @Security BearerAuth
// @Param title query string true "Title display name"
// @Success 200 {object} APIResponse
// @Failure 401 {object} APIResponse
// @Router /api/ratings [get]
func (s *Server) handleGetRating(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	r, err := s.RatingService.RatingFor(c.Request().Context(), userID, c.QueryParam("title"))
	if err != nil {
		// An unrated title reads as an empty result, not an error.
		if errors.Is(err, rating.ErrRatingNotFound) {
			return writeSuccess(c, http.StatusOK, map[string]interface{}{
				"rated": false,
			})
		}
		return err
	}

	return writeSuccess(c, http.StatusOK, map[string]interface{}{
		"rated":  true,
		"rating": r,
	})
}

// handleAddComment godoc
// @Summary Add Comment
// @Description Add a comment on a title as the authenticated user
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body AddCommentRequest true "Comment payload"
// @Success 201 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Failure 401 {object} APIResponse
// @Router /api/comments [post]
func (s *Server) handleAddComment(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req AddCommentRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request body", err.Error(), err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := s.RatingService.AddComment(c.Request().Context(), userID, req.Title, req.Text)
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusCreated, comment)
}

// handleListComments godoc
// @Summary List Comments
// @Description Get all comments for a title, newest first
// @Tags ratings
// @Produce json
// @Security BearerAuth
// @Param title query string true "Title display name"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Failure 401 {object} APIResponse
// @Router /api/comments [get]
func (s *Server) handleListComments(c echo.Context) error {
	if _, err := currentUserID(c); err != nil {
		return err
	}

	comments, err := s.RatingService.CommentsFor(c.Request().Context(), c.QueryParam("title"))
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, comments)
}

// handleDeleteComment godoc
// @Summary Delete Comment
// @Description Delete one of the authenticated user's comments
// @Tags ratings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment id"
// @Success 200 {object} APIResponse
// @Failure 401 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /api/comments/{id} [delete]
func (s *Server) handleDeleteComment(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := s.RatingService.DeleteComment(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, map[string]string{
		"status": "deleted",
	})
}
