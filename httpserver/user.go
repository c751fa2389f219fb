package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users/me", s.handleGetProfile)
	g.PUT("/users/me", s.handleUpdateProfile)
	g.PUT("/users/me/password", s.handleChangePassword)
	g.DELETE("/users/me", s.handleDeleteAccount)
}

// handleGetProfile godoc
// @Summary Get Profile
// @Description Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} APIResponse
// @Failure 401 {object} APIResponse
// @Router /api/users/me [get]
func (s *Server) handleGetProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	u, err := s.UserService.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, u)
}

// handleUpdateProfile godoc
// @Summary Update Profile
// @Description Update the authenticated user's name, phone and address
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body UpdateProfileRequest true "Profile Data"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Failure 401 {object} APIResponse
// @Router /api/users/me [put]
func (s *Server) handleUpdateProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request body", err.Error(), err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	u, err := s.UserService.UpdateProfile(c.Request().Context(), userID, req.Name, req.Phone, req.Address)
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, u)
}

// handleChangePassword godoc
// @Summary Change Password
// @Description Change the authenticated user's password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param passwords body ChangePasswordRequest true "Password Data"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Failure 401 {object} APIResponse
// @Router /api/users/me/password [put]
func (s *Server) handleChangePassword(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request body", err.Error(), err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := s.UserService.ChangePassword(c.Request().Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, map[string]string{
		"status": "password changed",
	})
}

// handleDeleteAccount godoc
// @Summary Delete Account
// @Description Delete the authenticated user's account and all owned data
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} APIResponse
// @Failure 401 {object} APIResponse
// @Router /api/users/me [delete]
func (s *Server) handleDeleteAccount(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := s.UserService.DeleteAccount(c.Request().Context(), userID); err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, map[string]string{
		"status": "account deleted",
	})
}
