package httpserver

import (
	"context"
	"net/http"

	"movieflow/auth"
	"movieflow/catalog"
	"movieflow/errs"
	"movieflow/pkg/config"
	"movieflow/rating"
	"movieflow/user"
	"movieflow/watchlist"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS
	AllowOrigins []string

	CatalogService catalog.Service

	AuthService auth.Service

	UserService user.Service

	WatchlistService watchlist.Service

	RatingService rating.Service

	JWTSecret string
}

func Default(cfg *config.Config) *Server {
	s := Server{
		Router:       echo.New(),
		Addr:         ":8080",
		AllowOrigins: []string{"*"},
		JWTSecret:    cfg.Auth.JWTSecret,
	}
	if len(cfg.AllowOrigins) > 0 {
		s.AllowOrigins = cfg.AllowOrigins
	}

	s.Router.HTTPErrorHandler = customHTTPErrorHandler
	s.Router.Validator = NewValidator()
	s.RegisterGlobalMiddlewares()

	api := s.Router.Group("/api")

	// PUBLIC
	public := api.Group("")
	s.RegisterAuthRoutes(public)
	s.RegisterCatalogRoutes(public)

	// PRIVATE
	private := api.Group("")
	private.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(cfg.Auth.JWTSecret),
		SigningMethod: "HS256",
	}))
	s.RegisterUserRoutes(private)
	s.RegisterWatchlistRoutes(private)
	s.RegisterRatingRoutes(private)

	s.RegisterHealthRoutes()
	s.RegisterSwaggerRoutes()
	return &s
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	s.Router.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(20)))

	// CORS
	if len(s.AllowOrigins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.AllowOrigins,
		}))
	}
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

// currentUserID extracts the authenticated user's id from the bearer token
// validated by the jwt middleware. It is the only identity source for
// private routes; request bodies never carry a user id.
func currentUserID(c echo.Context) (string, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return "", errs.Errorf(errs.EUNAUTHORIZED, "missing bearer token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errs.Errorf(errs.EUNAUTHORIZED, "invalid token claims")
	}
	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return "", errs.Errorf(errs.EUNAUTHORIZED, "invalid token claims")
	}
	return id, nil
}

// customHTTPErrorHandler maps application errors to appropriate HTTP status codes
func customHTTPErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := "Internal server error"

	// Check if it's an Echo HTTPError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		}
	} else {
		// Map application error codes to HTTP status codes
		switch errs.ErrorCode(err) {
		case errs.EINVALID:
			code = http.StatusBadRequest
			message = errs.ErrorMessage(err)
		case errs.ENOTFOUND:
			code = http.StatusNotFound
			message = errs.ErrorMessage(err)
		case errs.ECONFLICT:
			code = http.StatusConflict
			message = errs.ErrorMessage(err)
		case errs.EUNAUTHORIZED:
			code = http.StatusUnauthorized
			message = errs.ErrorMessage(err)
		case errs.ENOTIMPLEMENTED:
			code = http.StatusNotImplemented
			message = errs.ErrorMessage(err)
		case errs.EINTERNAL:
			code = http.StatusInternalServerError
			message = "Internal server error"
		}
	}

	// Don't write response if already committed
	if !c.Response().Committed {
		err = writeError(c, code, message, "", err)
		if err != nil {
			c.Logger().Error(err)
		}
	}
}
