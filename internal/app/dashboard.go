package app

import (
	"context"
	"sync"

	"github.com/jpp0ca/MusicSoulmate/internal/domain"
	"github.com/jpp0ca/MusicSoulmate/internal/ports"
	"github.com/jpp0ca/MusicSoulmate/internal/view"
)

// Dashboard is the projected local listening dashboard.
type Dashboard struct {
	Profile view.Section
	Artists view.Section
	Tracks  view.Section
	Taste   view.Section
}

// LoadDashboard calls the four local endpoints concurrently. Each section
// fails on its own; one failing endpoint does not hide the others.
func LoadDashboard(ctx context.Context, local ports.LocalAPI) Dashboard {
	var (
		wg        sync.WaitGroup
		dashboard Dashboard
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		profile, err := local.Me(ctx)
		dashboard.Profile = view.ProjectLocalProfile(profile, err)
	}()
	go func() {
		defer wg.Done()
		artists, err := local.TopArtists(ctx)
		dashboard.Artists = view.ProjectTopArtists(artists, err)
	}()
	go func() {
		defer wg.Done()
		tracks, err := local.TopTracks(ctx)
		dashboard.Tracks = view.ProjectTopTracks(tracks, err)
	}()
	go func() {
		defer wg.Done()
		taste, err := local.TasteProfile(ctx)
		dashboard.Taste = view.ProjectTasteProfile(taste, err)
	}()
	wg.Wait()

	return dashboard
}

// TasteItemsFromListening builds the match service's taste profile input out
// of the local backend's data. Tracks are labeled "Name – Artist".
func TasteItemsFromListening(profile *domain.UserProfile, artists []domain.Artist, tracks []domain.Track) domain.TasteItems {
	items := domain.TasteItems{
		TopArtists: []string{},
		TopGenres:  []string{},
		TopTracks:  []string{},
	}
	if profile != nil && profile.ID != "" {
		items.UserID = "spotify:user:" + profile.ID
	}

	for _, a := range artists {
		items.TopArtists = append(items.TopArtists, a.Name)
		items.TopGenres = append(items.TopGenres, a.Genres...)
	}
	for _, t := range tracks {
		artist := unknownArtist
		if len(t.Artists) > 0 {
			artist = t.Artists[0]
		}
		items.TopTracks = append(items.TopTracks, t.Name+" – "+artist)
	}

	return items
}

// SampleTasteItems is a fixed input for trying the match service without a
// Spotify token.
func SampleTasteItems() domain.TasteItems {
	return domain.TasteItems{
		UserID:     "spotify:user:briana",
		TopArtists: []string{"NCT 127", "Lisa", "Red Velvet", "NewJeans"},
		TopGenres:  []string{"k-pop", "k-pop", "r&b", "pop"},
		TopTracks: []string{
			"Favorite – NCT 127",
			"Sticker – NCT 127",
			"No Clue – NCT 127",
			"Chill – Lisa",
		},
	}
}
