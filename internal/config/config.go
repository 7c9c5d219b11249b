package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultMatchAPIBaseURL   = "https://7rn3olmit4.execute-api.us-east-1.amazonaws.com"
	defaultLocalAPIBaseURL   = "http://localhost:8080"
	defaultSpotifyAPIBaseURL = "https://api.spotify.com/v1"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port        string
	LogLevel    string
	Environment string
	LogFile     string

	// Remote match API (matches, profiles, connect, taste-profile).
	MatchAPIBaseURL string
	// Local taste backend served by cmd/api.
	LocalAPIBaseURL string

	SpotifyAPIBaseURL string
	SpotifyToken      string
	SpotifyRateLimit  float64

	CORSAllowedOrigins []string
}

// Load reads configuration from .env file (if present) and environment variables.
// A missing .env file is not an error; production environments rarely ship one.
func Load() *Config {
	_ = godotenv.Load()

	rateLimit, err := strconv.ParseFloat(getEnv("SPOTIFY_RATE_LIMIT", "10"), 64)
	if err != nil || rateLimit <= 0 {
		rateLimit = 10
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		LogFile:            getEnv("SOULMATE_LOG_FILE", ""),
		MatchAPIBaseURL:    trimBaseURL(getEnv("MATCH_API_BASE_URL", defaultMatchAPIBaseURL)),
		LocalAPIBaseURL:    trimBaseURL(getEnv("LOCAL_API_BASE_URL", defaultLocalAPIBaseURL)),
		SpotifyAPIBaseURL:  trimBaseURL(getEnv("SPOTIFY_API_BASE_URL", defaultSpotifyAPIBaseURL)),
		SpotifyToken:       getEnv("SPOTIFY_TOKEN", ""),
		SpotifyRateLimit:   rateLimit,
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// trimBaseURL drops the trailing slash so paths can be appended verbatim.
func trimBaseURL(u string) string {
	return strings.TrimRight(strings.TrimSpace(u), "/")
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
