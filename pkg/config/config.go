package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var Empty = new(Config)

type Config struct {
	AppEnv       string `envconfig:"APP_ENV"`
	Port         int    `envconfig:"PORT"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`
	AllowOrigins []string `envconfig:"ALLOW_ORIGINS"`

	DB struct {
		Name      string `envconfig:"DB_NAME"`
		Host      string `envconfig:"DB_HOST"`
		Port      int    `envconfig:"DB_PORT"`
		User      string `envconfig:"DB_USER"`
		Pass      string `envconfig:"DB_PASS"`
		EnableSSL bool   `envconfig:"ENABLE_SSL"`
	}
	Auth struct {
		JWTSecret  string `envconfig:"AUTH_JWT_SECRET"`
		TokenTTL   int    `envconfig:"AUTH_TOKEN_TTL" default:"900"`
		RefreshTTL int    `envconfig:"AUTH_REFRESH_TTL" default:"604800"`
	}
	Catalog struct {
		APIKey           string `envconfig:"CATALOG_API_KEY"`
		BaseURL          string `envconfig:"CATALOG_BASE_URL" default:"https://api.themoviedb.org/3"`
		Language         string `envconfig:"CATALOG_LANGUAGE" default:"pt-PT"`
		FallbackLanguage string `envconfig:"CATALOG_FALLBACK_LANGUAGE" default:"en-US"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	return cfg, nil
}
