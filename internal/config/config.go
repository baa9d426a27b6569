package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr        = ":8080"
	defaultDatabaseURL = "rampung.db"
	defaultJWTTTL      = "24h"
	defaultRateLimit   = "10"
	defaultRateWindow  = "1m"
	defaultLogFile     = "logs/api.log"
	defaultJWTSecret   = "change-me-jwt-secret"
)

type Config struct {
	AppEnv      string
	Addr        string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	CORSAllowedOrigins []string

	// Rate limit for the public diagnostic endpoint, per client IP.
	RateLimitRequests int
	RateLimitWindow   time.Duration

	LogFile string
}

// Load reads configuration from the environment, after loading .env when one
// is present. Missing values fall back to development defaults; a production
// environment refuses to run on the default JWT secret.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:      strings.ToLower(getEnv("APP_ENV", "dev")),
		Addr:        getEnv("ADDR", defaultAddr),
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:   strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
		LogFile:     getEnv("LOG_FILE", defaultLogFile),
	}

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}
	cfg.RateLimitWindow, err = parseDurationEnv("RATE_LIMIT_WINDOW", defaultRateWindow)
	if err != nil {
		return nil, err
	}
	cfg.RateLimitRequests, err = parseIntEnv("RATE_LIMIT_REQUESTS", defaultRateLimit)
	if err != nil {
		return nil, err
	}

	for _, o := range strings.Split(getEnv("CORS_ALLOWED_ORIGINS", ""), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set when APP_ENV=prod")
	}

	return cfg, nil
}

func (c *Config) IsProd() bool { return c.AppEnv == "prod" }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

func parseIntEnv(key, fallback string) (int, error) {
	raw := getEnv(key, fallback)
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return n, nil
}
