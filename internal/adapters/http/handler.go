package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jpp0ca/MusicSoulmate/internal/domain"
	"github.com/jpp0ca/MusicSoulmate/internal/logger"
	"github.com/jpp0ca/MusicSoulmate/internal/ports"
)

const serviceName = "music-soulmate-backend"

// Handler holds the HTTP handlers for the local taste backend.
type Handler struct {
	service      ports.TasteService
	defaultToken string
}

// NewHandler creates a new HTTP handler with the given taste service.
// defaultToken is used when a request carries no Authorization header.
func NewHandler(service ports.TasteService, defaultToken string) *Handler {
	return &Handler{service: service, defaultToken: defaultToken}
}

// RegisterRoutes sets up all API routes on the given Gin engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/me", h.Me)
	r.GET("/top-artists", h.TopArtists)
	r.GET("/top-tracks", h.TopTracks)
	r.GET("/taste-profile", h.TasteProfile)
}

// Health returns a simple health check response.
//
//	@Summary		Health check
//	@Description	Returns the health status of the backend
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": serviceName,
	})
}

// Me returns a simplified Spotify profile for the current user.
//
//	@Summary		Current user profile
//	@Tags			listening
//	@Produce		json
//	@Param			Authorization	header	string	false	"Bearer token for Spotify (falls back to SPOTIFY_TOKEN)"
//	@Success		200	{object}	domain.MeResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		502	{object}	ErrorResponse
//	@Router			/me [get]
func (h *Handler) Me(c *gin.Context) {
	token, ok := h.requireToken(c)
	if !ok {
		return
	}

	profile, err := h.service.Profile(c.Request.Context(), token)
	if err != nil {
		h.upstreamError(c, "failed to load profile", err)
		return
	}

	c.JSON(http.StatusOK, domain.MeResponse{Profile: profile})
}

// TopArtists returns the current user's top artists.
//
//	@Summary		Top artists
//	@Tags			listening
//	@Produce		json
//	@Param			Authorization	header	string	false	"Bearer token for Spotify (falls back to SPOTIFY_TOKEN)"
//	@Success		200	{object}	domain.TopArtistsResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		502	{object}	ErrorResponse
//	@Router			/top-artists [get]
func (h *Handler) TopArtists(c *gin.Context) {
	token, ok := h.requireToken(c)
	if !ok {
		return
	}

	artists, err := h.service.TopArtists(c.Request.Context(), token)
	if err != nil {
		h.upstreamError(c, "failed to load top artists", err)
		return
	}

	c.JSON(http.StatusOK, domain.TopArtistsResponse{TopArtists: artists})
}

// TopTracks returns the current user's top tracks.
//
//	@Summary		Top tracks
//	@Tags			listening
//	@Produce		json
//	@Param			Authorization	header	string	false	"Bearer token for Spotify (falls back to SPOTIFY_TOKEN)"
//	@Success		200	{object}	domain.TopTracksResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		502	{object}	ErrorResponse
//	@Router			/top-tracks [get]
func (h *Handler) TopTracks(c *gin.Context) {
	token, ok := h.requireToken(c)
	if !ok {
		return
	}

	tracks, err := h.service.TopTracks(c.Request.Context(), token)
	if err != nil {
		h.upstreamError(c, "failed to load top tracks", err)
		return
	}

	c.JSON(http.StatusOK, domain.TopTracksResponse{TopTracks: tracks})
}

// TasteProfile builds a taste profile from the user's top artists and tracks.
//
//	@Summary		Taste profile
//	@Description	Summarizes favorite genres (by artist count), favorite artists and sample tracks.
//	@Tags			listening
//	@Produce		json
//	@Param			Authorization	header	string	false	"Bearer token for Spotify (falls back to SPOTIFY_TOKEN)"
//	@Success		200	{object}	domain.TasteProfileResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		502	{object}	ErrorResponse
//	@Router			/taste-profile [get]
func (h *Handler) TasteProfile(c *gin.Context) {
	token, ok := h.requireToken(c)
	if !ok {
		return
	}

	profile, err := h.service.TasteProfile(c.Request.Context(), token)
	if err != nil {
		h.upstreamError(c, "failed to build taste profile", err)
		return
	}

	c.JSON(http.StatusOK, domain.TasteProfileResponse{TasteProfile: profile})
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (h *Handler) requireToken(c *gin.Context) (string, bool) {
	token := extractToken(c)
	if token == "" {
		token = h.defaultToken
	}
	if token == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "Authorization header with Bearer token is required",
		})
		return "", false
	}
	return token, true
}

// upstreamError logs err once and maps it onto a response. An expired or
// invalid Spotify token is reported as 401, anything else as 502.
func (h *Handler) upstreamError(c *gin.Context, message string, err error) {
	logger.FromContext(c.Request.Context()).Error(message, "error", err, "path", c.Request.URL.Path)

	var httpErr *domain.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusUnauthorized {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: message + ": spotify rejected the access token",
		})
		return
	}

	c.JSON(http.StatusBadGateway, ErrorResponse{
		Error:   "upstream_error",
		Message: message + ": " + err.Error(),
	})
}

// extractToken retrieves the Bearer token from the Authorization header.
func extractToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if len(auth) > 7 && auth[:7] == "Bearer " {
		return auth[7:]
	}
	return auth
}
