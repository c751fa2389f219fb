// nolint: funlen
package httpserver_test

import (
	"net/http"
	"testing"

	"movieflow/httpserver"
	"movieflow/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandleGetProfile(t *testing.T) {
	t.Run("should return the caller's profile", func(t *testing.T) {
		svc := new(MockUserService)
		server := httpserver.Default(testConfig())
		server.UserService = svc
		stored := user.User{ID: testUserID, Name: "Maria", Email: "maria@mail.com"}

		svc.On("GetUserByID", mock.Anything, testUserID).Return(stored, nil).Once()

		rec := jsonRequest(t, server, http.MethodGet, "/api/users/me", nil, signTestToken(t))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "maria@mail.com")
		assert.NotContains(t, rec.Body.String(), "password")
		svc.AssertExpectations(t)
	})

	t.Run("should require a bearer token", func(t *testing.T) {
		server := httpserver.Default(testConfig())
		server.UserService = new(MockUserService)

		rec := jsonRequest(t, server, http.MethodGet, "/api/users/me", nil, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHandleUpdateProfile(t *testing.T) {
	svc := new(MockUserService)
	server := httpserver.Default(testConfig())
	server.UserService = svc
	updated := user.User{ID: testUserID, Name: "Maria Silva", Phone: "912345678", Address: "Lisboa"}

	svc.On("UpdateProfile", mock.Anything, testUserID, "Maria Silva", "912345678", "Lisboa").
		Return(updated, nil).Once()

	rec := jsonRequest(t, server, http.MethodPut, "/api/users/me", map[string]string{
		"name":    "Maria Silva",
		"phone":   "912345678",
		"address": "Lisboa",
	}, signTestToken(t))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Maria Silva")
	svc.AssertExpectations(t)
}

func TestHandleChangePassword(t *testing.T) {
	t.Run("should change the password", func(t *testing.T) {
		svc := new(MockUserService)
		server := httpserver.Default(testConfig())
		server.UserService = svc

		svc.On("ChangePassword", mock.Anything, testUserID, "old-secret", "new-secret").
			Return(nil).Once()

		rec := jsonRequest(t, server, http.MethodPut, "/api/users/me/password", map[string]string{
			"currentPassword": "old-secret",
			"newPassword":     "new-secret",
		}, signTestToken(t))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should map a wrong current password to unauthorized", func(t *testing.T) {
		svc := new(MockUserService)
		server := httpserver.Default(testConfig())
		server.UserService = svc

		svc.On("ChangePassword", mock.Anything, testUserID, "wrong", "new-secret").
			Return(user.ErrCurrentPasswordInvalid).Once()

		rec := jsonRequest(t, server, http.MethodPut, "/api/users/me/password", map[string]string{
			"currentPassword": "wrong",
			"newPassword":     "new-secret",
		}, signTestToken(t))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject reusing the current password", func(t *testing.T) {
		svc := new(MockUserService)
		server := httpserver.Default(testConfig())
		server.UserService = svc

		rec := jsonRequest(t, server, http.MethodPut, "/api/users/me/password", map[string]string{
			"currentPassword": "same-secret",
			"newPassword":     "same-secret",
		}, signTestToken(t))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandleDeleteAccount(t *testing.T) {
	svc := new(MockUserService)
	server := httpserver.Default(testConfig())
	server.UserService = svc

	svc.On("DeleteAccount", mock.Anything, testUserID).Return(nil).Once()

	rec := jsonRequest(t, server, http.MethodDelete, "/api/users/me", nil, signTestToken(t))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "account deleted")
	svc.AssertExpectations(t)
}
