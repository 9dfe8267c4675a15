package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/baxromumarov/draft-board/internal/httpx"
)

// Config holds the HTTP server settings. The one-shot ranker takes none.
type Config struct {
	Port      string
	UserAgent string
	LogLevel  slog.Level
}

// Load reads an optional .env file, then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using process environment")
	}

	return &Config{
		Port:      getEnv("PORT", "8080"),
		UserAgent: getEnv("USER_AGENT", httpx.DefaultUserAgent),
		LogLevel:  parseLevel(getEnv("LOG_LEVEL", "info")),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseLevel(val string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
