package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const devSessionSecret = "dev-secret-change-in-production"

type Config struct {
	Port          string
	Env           string
	APIBaseURL    string
	SessionSecret string
	SessionExpiry time.Duration
	AuthRateLimit float64
	AuthRateBurst int
	CookieSecure  bool
}

func Load() Config {
	env := getEnv("ENV", "development")
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		Env:           env,
		APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:5000/api"),
		SessionSecret: getEnv("SESSION_SECRET", devSessionSecret),
		SessionExpiry: getDuration("SESSION_EXPIRY", 24*time.Hour),
		AuthRateLimit: getFloat("AUTH_RATE_LIMIT", 5),
		AuthRateBurst: getInt("AUTH_RATE_BURST", 10),
		CookieSecure:  getBool("COOKIE_SECURE", env == "production"),
	}

	if cfg.Env == "production" && cfg.SessionSecret == devSessionSecret {
		slog.Error("SESSION_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid number, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}
