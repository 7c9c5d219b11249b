package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jpp0ca/MusicSoulmate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_SuccessJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))
		assert.Empty(t, r.Header.Get("Content-Type"))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	body, err := NewClient(srv.Client()).Do(context.Background(), http.MethodGet, srv.URL, nil)

	require.NoError(t, err)
	assert.True(t, body.JSON)
	assert.Equal(t, map[string]any{"ok": true}, body.Value)
}

func TestDo_PostsJSONPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "a", got["from"])
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	body, err := NewClient(srv.Client()).Do(context.Background(), http.MethodPost, srv.URL,
		map[string]string{"from": "a"})

	require.NoError(t, err)
	assert.False(t, body.JSON)
}

func TestDo_SuccessRawText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain ok"))
	}))
	defer srv.Close()

	body, err := NewClient(nil).Do(context.Background(), http.MethodGet, srv.URL, nil)

	require.NoError(t, err)
	assert.False(t, body.JSON)
	assert.Equal(t, "plain ok", body.Raw)
}

func TestDo_HTTPErrorKeepsRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.Client()).Do(context.Background(), http.MethodGet, srv.URL, nil)

	var httpErr *domain.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
	assert.Equal(t, "<html>bad gateway</html>", httpErr.Body.Raw)
	assert.False(t, httpErr.Body.JSON)
}

func TestDo_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(nil).Do(context.Background(), http.MethodGet, url, nil)

	var netErr *domain.NetworkError
	require.True(t, errors.As(err, &netErr))
}
