package localapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/jpp0ca/MusicSoulmate/internal/adapters/rest"
	"github.com/jpp0ca/MusicSoulmate/internal/domain"
)

// DefaultBaseURL is where cmd/api listens unless PORT is changed.
const DefaultBaseURL = "http://localhost:8080"

// Client implements ports.LocalAPI against the local taste backend.
type Client struct {
	baseURL string
	rest    *rest.Client
}

// NewClient creates a local backend client. If httpClient is nil,
// http.DefaultClient is used.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		rest:    rest.NewClient(httpClient),
	}
}

func (c *Client) Me(ctx context.Context) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	found, err := c.get(ctx, "/me", &profile, "profile")
	if err != nil || !found {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) TopArtists(ctx context.Context) ([]domain.Artist, error) {
	artists := []domain.Artist{}
	if _, err := c.get(ctx, "/top-artists", &artists, "top_artists", "topArtists"); err != nil {
		return nil, err
	}
	return artists, nil
}

func (c *Client) TopTracks(ctx context.Context) ([]domain.Track, error) {
	tracks := []domain.Track{}
	if _, err := c.get(ctx, "/top-tracks", &tracks, "top_tracks", "topTracks"); err != nil {
		return nil, err
	}
	return tracks, nil
}

func (c *Client) TasteProfile(ctx context.Context) (*domain.TasteProfile, error) {
	var profile domain.TasteProfile
	found, err := c.get(ctx, "/taste-profile", &profile, "taste_profile", "tasteProfile")
	if err != nil || !found {
		return nil, err
	}
	return &profile, nil
}

// get fetches path and decodes the first envelope key present into out.
// found is false when the success body is not JSON or lacks every key; out
// is left untouched then.
func (c *Client) get(ctx context.Context, path string, out any, keys ...string) (found bool, err error) {
	body, err := c.rest.Do(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return false, err
	}
	if !body.JSON {
		return false, nil
	}

	root := gjson.Parse(body.Raw)
	for _, key := range keys {
		inner := root.Get(key)
		if !inner.Exists() || inner.Type == gjson.Null {
			continue
		}
		if err := json.Unmarshal([]byte(inner.Raw), out); err != nil {
			return false, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		return true, nil
	}

	return false, nil
}
