package httpserver

import (
	"errors"
	"net/http"

	"movieflow/auth"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/auth/register", s.handleRegister)
	g.POST("/auth/login", s.handleLogin)
	g.POST("/auth/refresh", s.handleRefresh)
}

// handleRegister godoc
// @Summary User Register
// @Description Register a new user and return access + refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body RegisterRequest true "Register payload"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Failure 409 {object} APIResponse
// @Failure 500 {object} APIResponse
// @Router /api/auth/register [post]
func (s *Server) handleRegister(c echo.Context) error {
	var req RegisterRequest

	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request body", err.Error(), err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tokens, err := s.AuthService.Register(c.Request().Context(), req.ToUser())
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, tokens)
}

// handleLogin godoc
// @Summary User Login
// @Description Authenticate user and return access + refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login Credentials"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Failure 401 {object} APIResponse
// @Failure 429 {object} APIResponse
// @Failure 500 {object} APIResponse
// @Router /api/auth/login [post]
func (s *Server) handleLogin(c echo.Context) error {
	var req LoginRequest

	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request body", err.Error(), err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tokens, err := s.AuthService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrAccountLocked) {
			return writeError(c, http.StatusTooManyRequests, "account temporarily locked", "", err)
		}
		return err
	}

	return writeSuccess(c, http.StatusOK, tokens)
}

// handleRefresh godoc
// @Summary Refresh Access Token
// @Description Refresh access token using refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body RefreshRequest true "Refresh Token"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Failure 401 {object} APIResponse
// @Failure 500 {object} APIResponse
// @Router /api/auth/refresh [post]
func (s *Server) handleRefresh(c echo.Context) error {
	var req RefreshRequest

	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request body", err.Error(), err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tokens, err := s.AuthService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, tokens)
}
