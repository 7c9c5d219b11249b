package app

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/jpp0ca/MusicSoulmate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -- Mock listening source ---------------------------------------------------

type mockSource struct {
	user       *domain.UserProfile
	artists    []domain.Artist
	tracks     []domain.Track
	artistsErr error
	tracksErr  error

	mu     sync.Mutex
	limits []int
}

func (m *mockSource) Name() string { return "mock" }

func (m *mockSource) CurrentUser(_ context.Context, _ string) (*domain.UserProfile, error) {
	return m.user, nil
}

func (m *mockSource) TopArtists(_ context.Context, _ string, limit int) ([]domain.Artist, error) {
	m.record(limit)
	return m.artists, m.artistsErr
}

func (m *mockSource) TopTracks(_ context.Context, _ string, limit int) ([]domain.Track, error) {
	m.record(limit)
	return m.tracks, m.tracksErr
}

func (m *mockSource) record(limit int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.limits = append(m.limits, limit)
}

// -- Tests -------------------------------------------------------------------

func TestTasteProfile_Summary(t *testing.T) {
	source := &mockSource{
		artists: []domain.Artist{
			{Name: "NCT 127", Genres: []string{"k-pop", "k-pop boy group"}},
			{Name: "Lisa", Genres: []string{"k-pop", "pop"}},
			{Name: "Red Velvet", Genres: []string{"k-pop", "pop"}},
			{Name: "NewJeans", Genres: []string{"k-pop girl group"}},
		},
		tracks: []domain.Track{
			{Name: "Favorite", Artists: []string{"NCT 127"}},
			{Name: "Untitled"},
		},
	}

	svc := NewTasteService(source)
	profile, err := svc.TasteProfile(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, []string{"k-pop", "pop", "k-pop boy group", "k-pop girl group"}, profile.FavoriteGenres)
	assert.Equal(t, []string{"NCT 127", "Lisa", "Red Velvet", "NewJeans"}, profile.FavoriteArtists)
	assert.Equal(t, []domain.SampleTrack{
		{Name: "Favorite", Artist: "NCT 127"},
		{Name: "Untitled", Artist: "Unknown artist"},
	}, profile.SampleTracks)
	assert.Equal(t,
		"You mainly listen to genres like k-pop, pop, k-pop boy group. Your top artists include NCT 127, Lisa, Red Velvet.",
		profile.Summary)
	assert.ElementsMatch(t, []int{20, 20}, source.limits)
}

func TestTasteProfile_Empty(t *testing.T) {
	profile := BuildTasteProfile(nil, nil)

	assert.Empty(t, profile.FavoriteGenres)
	assert.NotNil(t, profile.FavoriteArtists)
	assert.NotNil(t, profile.SampleTracks)
	assert.Contains(t, profile.Summary, "couldn't build a taste profile")
}

func TestTasteProfile_CapsAtFive(t *testing.T) {
	var artists []domain.Artist
	for i := 0; i < 8; i++ {
		artists = append(artists, domain.Artist{
			Name:   fmt.Sprintf("Artist %d", i),
			Genres: []string{fmt.Sprintf("genre-%d", i)},
		})
	}

	profile := BuildTasteProfile(artists, nil)

	assert.Len(t, profile.FavoriteGenres, 5)
	assert.Len(t, profile.FavoriteArtists, 5)
	assert.Equal(t, "genre-0", profile.FavoriteGenres[0])
}

func TestTasteProfile_SourceError(t *testing.T) {
	source := &mockSource{tracksErr: fmt.Errorf("quota exceeded")}

	_, err := NewTasteService(source).TasteProfile(context.Background(), "tok")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "top tracks")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestTopArtists_UsesListLimit(t *testing.T) {
	source := &mockSource{artists: []domain.Artist{{Name: "A"}}}

	artists, err := NewTasteService(source).TopArtists(context.Background(), "tok")

	require.NoError(t, err)
	assert.Len(t, artists, 1)
	assert.Equal(t, []int{10}, source.limits)
}
