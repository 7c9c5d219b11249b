package main

import (
	"context"
	"errors"
	"math"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"

	handler "github.com/jpp0ca/MusicSoulmate/internal/adapters/http"
	"github.com/jpp0ca/MusicSoulmate/internal/adapters/spotify"
	"github.com/jpp0ca/MusicSoulmate/internal/app"
	"github.com/jpp0ca/MusicSoulmate/internal/config"
	"github.com/jpp0ca/MusicSoulmate/internal/logger"

	_ "github.com/jpp0ca/MusicSoulmate/docs"
)

// @title			Music Soulmate Backend
// @version		1.0
// @description	Local taste backend: Spotify profile, top artists, top tracks and a taste profile summary.

// @contact.name	Music Soulmate Support
// @license.name	MIT

// @host		localhost:8080
// @BasePath	/

// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Spotify access token (e.g. "Bearer your_token_here")
func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.Environment, nil)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	burst := int(math.Ceil(cfg.SpotifyRateLimit))
	limiter := rate.NewLimiter(rate.Limit(cfg.SpotifyRateLimit), burst)

	// Create the listening source and the taste service on top of it
	httpClient := &http.Client{Timeout: 15 * time.Second}
	spotifyProvider := spotify.NewProvider(httpClient, cfg.SpotifyAPIBaseURL, limiter)
	tasteService := app.NewTasteService(spotifyProvider)

	// Setup HTTP server
	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger(), handler.CORSMiddleware(cfg.CORSAllowedOrigins))
	h := handler.NewHandler(tasteService, cfg.SpotifyToken)
	h.RegisterRoutes(r)

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := ":" + cfg.Port
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting music soulmate backend",
			"addr", addr,
			"provider", spotifyProvider.Name(),
			"spotify_rate_limit", cfg.SpotifyRateLimit,
			"default_token", cfg.SpotifyToken != "",
		)
		logger.Info("swagger UI", "url", "http://localhost"+addr+"/swagger/index.html")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}
