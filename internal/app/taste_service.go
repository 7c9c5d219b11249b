package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jpp0ca/MusicSoulmate/internal/domain"
	"github.com/jpp0ca/MusicSoulmate/internal/logger"
	"github.com/jpp0ca/MusicSoulmate/internal/ports"
)

const (
	// page sizes of the /top-artists and /top-tracks endpoints
	listLimit = 10
	// the taste profile looks a bit deeper so the summary feels richer
	tasteLimit = 20

	favoriteGenreCount  = 5
	favoriteArtistCount = 5
	sampleTrackCount    = 5
	summaryNameCount    = 3

	unknownArtist = "Unknown artist"
	emptySummary  = "We couldn't build a taste profile yet – Spotify may need more listening data."
)

// TasteService implements ports.TasteService on top of a listening source.
type TasteService struct {
	source ports.ListeningSource
}

// NewTasteService creates a taste service reading from source.
func NewTasteService(source ports.ListeningSource) *TasteService {
	return &TasteService{source: source}
}

func (s *TasteService) Profile(ctx context.Context, token string) (*domain.UserProfile, error) {
	return s.source.CurrentUser(ctx, token)
}

func (s *TasteService) TopArtists(ctx context.Context, token string) ([]domain.Artist, error) {
	return s.source.TopArtists(ctx, token, listLimit)
}

func (s *TasteService) TopTracks(ctx context.Context, token string) ([]domain.Track, error) {
	return s.source.TopTracks(ctx, token, listLimit)
}

// TasteProfile fetches top artists and top tracks concurrently and
// summarizes them.
func (s *TasteService) TasteProfile(ctx context.Context, token string) (*domain.TasteProfile, error) {
	var (
		wg                    sync.WaitGroup
		artists               []domain.Artist
		tracks                []domain.Track
		artistsErr, tracksErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		artists, artistsErr = s.source.TopArtists(ctx, token, tasteLimit)
	}()
	go func() {
		defer wg.Done()
		tracks, tracksErr = s.source.TopTracks(ctx, token, tasteLimit)
	}()
	wg.Wait()

	if artistsErr != nil {
		return nil, fmt.Errorf("failed to fetch top artists: %w", artistsErr)
	}
	if tracksErr != nil {
		return nil, fmt.Errorf("failed to fetch top tracks: %w", tracksErr)
	}

	profile := BuildTasteProfile(artists, tracks)
	logger.FromContext(ctx).Debug("taste profile built",
		"provider", s.source.Name(),
		"artists", len(artists),
		"tracks", len(tracks),
		"genres", len(profile.FavoriteGenres),
	)

	return profile, nil
}

// BuildTasteProfile derives favorite genres (by artist count, ties in
// first-seen order), the first artists, sample tracks and a one-line summary.
func BuildTasteProfile(artists []domain.Artist, tracks []domain.Track) *domain.TasteProfile {
	profile := &domain.TasteProfile{
		FavoriteGenres:  mostCommonGenres(artists, favoriteGenreCount),
		FavoriteArtists: []string{},
		SampleTracks:    []domain.SampleTrack{},
	}

	for _, a := range head(artists, favoriteArtistCount) {
		profile.FavoriteArtists = append(profile.FavoriteArtists, a.Name)
	}

	for _, t := range head(tracks, sampleTrackCount) {
		artist := unknownArtist
		if len(t.Artists) > 0 {
			artist = t.Artists[0]
		}
		profile.SampleTracks = append(profile.SampleTracks, domain.SampleTrack{Name: t.Name, Artist: artist})
	}

	var parts []string
	if len(profile.FavoriteGenres) > 0 {
		parts = append(parts, fmt.Sprintf("You mainly listen to genres like %s.",
			strings.Join(head(profile.FavoriteGenres, summaryNameCount), ", ")))
	}
	if len(profile.FavoriteArtists) > 0 {
		parts = append(parts, fmt.Sprintf("Your top artists include %s.",
			strings.Join(head(profile.FavoriteArtists, summaryNameCount), ", ")))
	}

	if len(parts) == 0 {
		profile.Summary = emptySummary
	} else {
		profile.Summary = strings.Join(parts, " ")
	}

	return profile
}

func mostCommonGenres(artists []domain.Artist, n int) []string {
	counts := map[string]int{}
	var order []string
	for _, a := range artists {
		for _, g := range a.Genres {
			if _, seen := counts[g]; !seen {
				order = append(order, g)
			}
			counts[g]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	out := make([]string, 0, n)
	return append(out, head(order, n)...)
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
