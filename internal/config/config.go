package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultAppEnv            = "dev"
	defaultHTTPAddr          = ":8080"
	defaultDatabaseURL       = "restaurants.db"
	defaultJWTSecret         = "change-me-jwt-secret"
	defaultJWTTTL            = "24h"
	defaultRestaurantsFolder = "./public/restaurants"
	defaultRestaurantsURL    = "/public/restaurants"
	defaultUploadMaxSize     = 5 << 20
	defaultLogLevel          = "info"
)

// Config is loaded once at startup and treated as read-only afterwards.
type Config struct {
	AppEnv               string
	HTTPAddr             string
	DatabaseURL          string
	JWTSecret            string
	JWTTTL               time.Duration
	RestaurantsFolder    string
	RestaurantsURLPrefix string
	UploadMaxFileSize    int64
	CORSAllowedOrigins   []string
	EnforceRouteAuth     bool
	LogLevel             string
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_ENV", defaultAppEnv)
	v.SetDefault("HTTP_ADDR", defaultHTTPAddr)
	v.SetDefault("DATABASE_URL", defaultDatabaseURL)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_TTL", defaultJWTTTL)
	v.SetDefault("RESTAURANTS_FOLDER", defaultRestaurantsFolder)
	v.SetDefault("RESTAURANTS_URL_PREFIX", defaultRestaurantsURL)
	v.SetDefault("UPLOAD_MAX_FILE_SIZE", defaultUploadMaxSize)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("ROUTES_ENFORCE_AUTH", true)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)

	cfg := &Config{
		AppEnv:               strings.ToLower(strings.TrimSpace(v.GetString("APP_ENV"))),
		HTTPAddr:             strings.TrimSpace(v.GetString("HTTP_ADDR")),
		DatabaseURL:          strings.TrimSpace(v.GetString("DATABASE_URL")),
		JWTSecret:            strings.TrimSpace(v.GetString("JWT_SECRET")),
		RestaurantsFolder:    strings.TrimSpace(v.GetString("RESTAURANTS_FOLDER")),
		RestaurantsURLPrefix: strings.TrimRight(strings.TrimSpace(v.GetString("RESTAURANTS_URL_PREFIX")), "/"),
		UploadMaxFileSize:    v.GetInt64("UPLOAD_MAX_FILE_SIZE"),
		CORSAllowedOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		EnforceRouteAuth:     v.GetBool("ROUTES_ENFORCE_AUTH"),
		LogLevel:             strings.TrimSpace(v.GetString("LOG_LEVEL")),
	}

	ttl := strings.TrimSpace(v.GetString("JWT_TTL"))
	d, err := time.ParseDuration(ttl)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL value %q: %w", ttl, err)
	}
	cfg.JWTTTL = d

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("config loaded: env=%s addr=%s restaurants_folder=%s enforce_route_auth=%t",
		cfg.AppEnv, cfg.HTTPAddr, cfg.RestaurantsFolder, cfg.EnforceRouteAuth)

	return cfg, nil
}

func (c *Config) IsProdLike() bool {
	return isProdLike(c.AppEnv)
}

func validateConfig(cfg *Config) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.UploadMaxFileSize <= 0 {
		return fmt.Errorf("UPLOAD_MAX_FILE_SIZE must be > 0")
	}
	if cfg.RestaurantsFolder == "" {
		return fmt.Errorf("RESTAURANTS_FOLDER must not be empty")
	}
	if cfg.RestaurantsURLPrefix == "" || !strings.HasPrefix(cfg.RestaurantsURLPrefix, "/") {
		return fmt.Errorf("RESTAURANTS_URL_PREFIX must be an absolute URL path")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
