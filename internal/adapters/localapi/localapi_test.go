package localapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jpp0ca/MusicSoulmate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"profile":{"id":"briana","display_name":"Briana","followers":1234}}`))
	})
	mux.HandleFunc("/top-artists", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"top_artists":[{"id":"a1","name":"NCT 127","genres":["k-pop"]}]}`))
	})
	mux.HandleFunc("/top-tracks", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"topTracks":[{"id":"t1","name":"Fact Check","artists":["NCT 127"]}]}`))
	})
	mux.HandleFunc("/taste-profile", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"unauthorized","message":"missing Spotify token"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestMe(t *testing.T) {
	srv := newBackend(t)

	profile, err := NewClient(srv.URL, srv.Client()).Me(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "briana", profile.ID)
	assert.Equal(t, "Briana", profile.DisplayName)
	require.NotNil(t, profile.Followers)
	assert.Equal(t, 1234, *profile.Followers)
}

func TestTopArtists(t *testing.T) {
	srv := newBackend(t)

	artists, err := NewClient(srv.URL, srv.Client()).TopArtists(context.Background())

	require.NoError(t, err)
	require.Len(t, artists, 1)
	assert.Equal(t, []string{"k-pop"}, artists[0].Genres)
}

func TestTopTracks_CamelCaseEnvelope(t *testing.T) {
	srv := newBackend(t)

	tracks, err := NewClient(srv.URL, srv.Client()).TopTracks(context.Background())

	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "Fact Check", tracks[0].Name)
}

func TestTasteProfile_HTTPError(t *testing.T) {
	srv := newBackend(t)

	_, err := NewClient(srv.URL, srv.Client()).TasteProfile(context.Background())

	var httpErr *domain.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
	assert.Equal(t, "missing Spotify token", httpErr.Message())
}

func TestTopArtists_MissingEnvelopeIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	artists, err := NewClient(srv.URL, srv.Client()).TopArtists(context.Background())

	require.NoError(t, err)
	assert.Empty(t, artists)
}

func TestMe_MissingEnvelopeIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	profile, err := NewClient(srv.URL, srv.Client()).Me(context.Background())

	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestTasteProfile_NullEnvelopeIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"taste_profile":null}`))
	}))
	defer srv.Close()

	profile, err := NewClient(srv.URL, srv.Client()).TasteProfile(context.Background())

	require.NoError(t, err)
	assert.Nil(t, profile)
}
