// nolint: funlen
package httpserver_test

import (
	"net/http"
	"testing"

	"movieflow/httpserver"
	"movieflow/rating"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandleRate(t *testing.T) {
	t.Run("should report the toggle outcome", func(t *testing.T) {
		svc := new(MockRatingService)
		server := httpserver.Default(testConfig())
		server.RatingService = svc

		svc.On("Rate", mock.Anything, testUserID, "Heat", rating.KindLike).
			Return(rating.OutcomeAdded, nil).Once()

		rec := jsonRequest(t, server, http.MethodPost, "/api/ratings", map[string]string{
			"title": "Heat",
			"kind":  "like",
		}, signTestToken(t))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"outcome":"added"`)
		svc.AssertExpectations(t)
	})

	t.Run("should reject an unknown kind", func(t *testing.T) {
		svc := new(MockRatingService)
		server := httpserver.Default(testConfig())
		server.RatingService = svc

		rec := jsonRequest(t, server, http.MethodPost, "/api/ratings", map[string]string{
			"title": "Heat",
			"kind":  "meh",
		}, signTestToken(t))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Rate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should require a bearer token", func(t *testing.T) {
		server := httpserver.Default(testConfig())
		server.RatingService = new(MockRatingService)

		rec := jsonRequest(t, server, http.MethodPost, "/api/ratings", map[string]string{
			"title": "Heat",
			"kind":  "like",
		}, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHandleGetRating(t *testing.T) {
	t.Run("should return the stored rating", func(t *testing.T) {
		svc := new(MockRatingService)
		server := httpserver.Default(testConfig())
		server.RatingService = svc
		stored := rating.Rating{ID: "r1", UserID: testUserID, Title: "Heat", Kind: rating.KindLike}

		svc.On("RatingFor", mock.Anything, testUserID, "Heat").Return(stored, nil).Once()

		rec := jsonRequest(t, server, http.MethodGet, "/api/ratings?title=Heat", nil, signTestToken(t))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"rated":true`)
		assert.Contains(t, rec.Body.String(), `"kind":"like"`)
	})

	t.Run("should report unrated as an empty result", func(t *testing.T) {
		svc := new(MockRatingService)
		server := httpserver.Default(testConfig())
		server.RatingService = svc

		svc.On("RatingFor", mock.Anything, testUserID, "Heat").
			Return(rating.Rating{}, rating.ErrRatingNotFound).Once()

		rec := jsonRequest(t, server, http.MethodGet, "/api/ratings?title=Heat", nil, signTestToken(t))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"rated":false`)
	})
}

func TestHandleComments(t *testing.T) {
	t.Run("should create a comment", func(t *testing.T) {
		svc := new(MockRatingService)
		server := httpserver.Default(testConfig())
		server.RatingService = svc
		comment := rating.Comment{ID: "c1", UserID: testUserID, Title: "Heat", Text: "great heist"}

		svc.On("AddComment", mock.Anything, testUserID, "Heat", "great heist").
			Return(comment, nil).Once()

		rec := jsonRequest(t, server, http.MethodPost, "/api/comments", map[string]string{
			"title": "Heat",
			"text":  "great heist",
		}, signTestToken(t))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "great heist")
	})

	t.Run("should list comments for a title", func(t *testing.T) {
		svc := new(MockRatingService)
		server := httpserver.Default(testConfig())
		server.RatingService = svc
		comments := []rating.Comment{
			{ID: "c2", Title: "Heat", Text: "rewatched it"},
			{ID: "c1", Title: "Heat", Text: "great heist"},
		}

		svc.On("CommentsFor", mock.Anything, "Heat").Return(comments, nil).Once()

		rec := jsonRequest(t, server, http.MethodGet, "/api/comments?title=Heat", nil, signTestToken(t))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "rewatched it")
	})

	t.Run("should map a foreign comment delete to not found", func(t *testing.T) {
		svc := new(MockRatingService)
		server := httpserver.Default(testConfig())
		server.RatingService = svc

		svc.On("DeleteComment", mock.Anything, testUserID, "c-stranger").
			Return(rating.ErrCommentNotFound).Once()

		rec := jsonRequest(t, server, http.MethodDelete, "/api/comments/c-stranger", nil, signTestToken(t))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
