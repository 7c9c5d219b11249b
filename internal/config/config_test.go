package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "ENVIRONMENT", "MATCH_API_BASE_URL", "LOCAL_API_BASE_URL",
		"SPOTIFY_API_BASE_URL", "SPOTIFY_TOKEN", "SPOTIFY_RATE_LIMIT", "CORS_ALLOWED_ORIGINS",
		"SOULMATE_LOG_FILE",
	} {
		t.Setenv(key, "")
	}
	// t.Setenv with "" still counts as set, so reset the ones with non-empty defaults.
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOCAL_API_BASE_URL", "http://localhost:8080/")
	t.Setenv("SPOTIFY_RATE_LIMIT", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "*")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:8080", cfg.LocalAPIBaseURL)
	assert.Equal(t, 10.0, cfg.SpotifyRateLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MATCH_API_BASE_URL", " https://matches.example.com/ ")
	t.Setenv("SPOTIFY_RATE_LIMIT", "2.5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("ENVIRONMENT", "production")

	cfg := Load()

	assert.Equal(t, "https://matches.example.com", cfg.MatchAPIBaseURL)
	assert.Equal(t, 2.5, cfg.SpotifyRateLimit)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "production", cfg.Environment)
}
