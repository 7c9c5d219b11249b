package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"github.com/jpp0ca/MusicSoulmate/internal/domain"
)

const (
	DefaultBaseURL = "https://api.spotify.com/v1"
	maxPerPage     = 50
)

// Provider implements ports.ListeningSource for Spotify using the Web API.
type Provider struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

// NewProvider creates a new Spotify provider. If client is nil,
// http.DefaultClient is used; if limiter is nil, calls are not throttled.
func NewProvider(client *http.Client, baseURL string, limiter *rate.Limiter) *Provider {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &Provider{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		limiter: limiter,
	}
}

func (p *Provider) Name() string {
	return "spotify"
}

// -- API response types (internal) ------------------------------------------

type imageData struct {
	URL string `json:"url"`
}

type externalURLs struct {
	Spotify string `json:"spotify"`
}

type userResponse struct {
	ID           string       `json:"id"`
	DisplayName  string       `json:"display_name"`
	ExternalURLs externalURLs `json:"external_urls"`
	Images       []imageData  `json:"images"`
	Followers    *struct {
		Total int `json:"total"`
	} `json:"followers"`
}

type topArtistsResponse struct {
	Items []artistData `json:"items"`
}

type artistData struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Images []imageData `json:"images"`
	Genres []string    `json:"genres"`
}

type topTracksResponse struct {
	Items []trackData `json:"items"`
}

type trackData struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Artists      []artistRef  `json:"artists"`
	ExternalURLs externalURLs `json:"external_urls"`
	PreviewURL   string       `json:"preview_url"`
}

type artistRef struct {
	Name string `json:"name"`
}

// -- ListeningSource implementation ------------------------------------------

func (p *Provider) CurrentUser(ctx context.Context, token string) (*domain.UserProfile, error) {
	body, err := p.doGet(ctx, token, p.baseURL+"/me")
	if err != nil {
		return nil, fmt.Errorf("spotify: failed to get current user: %w", err)
	}

	var resp userResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("spotify: failed to parse user response: %w", err)
	}

	profile := &domain.UserProfile{
		ID:          resp.ID,
		DisplayName: resp.DisplayName,
		SpotifyURL:  resp.ExternalURLs.Spotify,
		ImageURL:    firstImage(resp.Images),
	}
	if resp.Followers != nil {
		total := resp.Followers.Total
		profile.Followers = &total
	}

	return profile, nil
}

func (p *Provider) TopArtists(ctx context.Context, token string, limit int) ([]domain.Artist, error) {
	endpoint := fmt.Sprintf("%s/me/top/artists?limit=%d", p.baseURL, clampLimit(limit))

	body, err := p.doGet(ctx, token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("spotify: failed to get top artists: %w", err)
	}

	var resp topArtistsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("spotify: failed to parse top artists response: %w", err)
	}

	artists := make([]domain.Artist, 0, len(resp.Items))
	for _, a := range resp.Items {
		genres := a.Genres
		if genres == nil {
			genres = []string{}
		}
		artists = append(artists, domain.Artist{
			ID:       a.ID,
			Name:     a.Name,
			ImageURL: firstImage(a.Images),
			Genres:   genres,
		})
	}

	return artists, nil
}

func (p *Provider) TopTracks(ctx context.Context, token string, limit int) ([]domain.Track, error) {
	endpoint := fmt.Sprintf("%s/me/top/tracks?limit=%d", p.baseURL, clampLimit(limit))

	body, err := p.doGet(ctx, token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("spotify: failed to get top tracks: %w", err)
	}

	var resp topTracksResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("spotify: failed to parse top tracks response: %w", err)
	}

	tracks := make([]domain.Track, 0, len(resp.Items))
	for _, t := range resp.Items {
		tracks = append(tracks, toTrack(t))
	}

	return tracks, nil
}

// -- HTTP helpers ------------------------------------------------------------

func (p *Provider) doGet(ctx context.Context, token string, endpoint string) ([]byte, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.HTTPError{StatusCode: resp.StatusCode, Body: domain.ParseBody(body)}
	}

	return body, nil
}

// -- Helpers -----------------------------------------------------------------

func toTrack(t trackData) domain.Track {
	artists := make([]string, 0, len(t.Artists))
	for _, a := range t.Artists {
		artists = append(artists, a.Name)
	}

	return domain.Track{
		ID:         t.ID,
		Name:       t.Name,
		Artists:    artists,
		SpotifyURL: t.ExternalURLs.Spotify,
		PreviewURL: t.PreviewURL,
	}
}

func firstImage(images []imageData) string {
	if len(images) == 0 {
		return ""
	}
	return images[0].URL
}

// clampLimit keeps limit inside the 1..50 range the Web API accepts.
func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > maxPerPage {
		return maxPerPage
	}
	return limit
}
