package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"movieflow/auth"
	"movieflow/catalog"
	"movieflow/httpserver"
	"movieflow/pkg/config"
	"movieflow/pkg/hash"
	"movieflow/pkg/jwt"
	"movieflow/pkg/sentry"
	"movieflow/postgres"
	"movieflow/rating"
	"movieflow/tmdb"
	"movieflow/user"
	"movieflow/watchlist"

	sentrygo "github.com/getsentry/sentry-go"
	_ "github.com/lib/pq"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		slog.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	db, err := postgres.NewConnection(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     fmt.Sprintf("%d", cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	})
	if err != nil {
		slog.Error("Cannot open postgres connection", "error", err)
		os.Exit(1)
	}

	userRepo := postgres.NewUserRepository(db)
	attemptRepo := postgres.NewLoginAttemptRepository(db)
	watchlistRepo := postgres.NewWatchlistRepository(db)
	ratingRepo := postgres.NewRatingRepository(db)

	hasher := hash.NewBcryptHasher()
	tokenProvider := jwt.NewJWTProvider(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTL)*time.Second,
		time.Duration(cfg.Auth.RefreshTTL)*time.Second,
	)

	tmdbClient := tmdb.NewClient(cfg.Catalog.APIKey, cfg.Catalog.Language, tmdb.WithBaseURL(cfg.Catalog.BaseURL))
	reporter := catalog.ReporterFunc(func(err error) {
		sentry.Error(err)
		slog.Warn("catalog lookup degraded", "error", err)
	})

	server := httpserver.Default(cfg)
	server.Addr = fmt.Sprintf(":%d", cfg.Port)
	server.CatalogService = catalog.NewUsecase(tmdbClient, reporter, cfg.Catalog.Language, cfg.Catalog.FallbackLanguage)
	server.AuthService = auth.NewUsecase(userRepo, attemptRepo, hasher, tokenProvider)
	server.UserService = user.NewUsecase(userRepo, hasher)
	server.WatchlistService = watchlist.NewUsecase(watchlistRepo)
	server.RatingService = rating.NewUsecase(ratingRepo)

	slog.Info("server started!")
	if err := server.Start(); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}
