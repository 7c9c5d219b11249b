package view

import (
	"errors"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jpp0ca/MusicSoulmate/internal/domain"
)

// Link is an external URL with a short label.
type Link struct {
	Label string
	URL   string
}

// Item is one entry of a dashboard list.
type Item struct {
	Title    string
	Subtitle string
	ImageURL string
	Links    []Link
}

// Section is one dashboard block. Status is set when there is nothing to
// show, either because loading failed or because the list came back empty.
type Section struct {
	Title  string
	Status string
	Lines  []string
	Items  []Item
	Code   string
}

func ProjectLocalProfile(profile *domain.UserProfile, err error) Section {
	s := Section{Title: "Profile"}
	switch {
	case err != nil:
		s.Status = "Error loading profile. " + ProjectStatus(err).String()
		return s
	case profile == nil:
		s.Status = "No profile data found."
		return s
	}

	name := profile.DisplayName
	if name == "" {
		name = "Unknown user"
	}
	followers := "N/A"
	if profile.Followers != nil {
		followers = humanize.Comma(int64(*profile.Followers))
	}

	item := Item{Title: name, ImageURL: profile.ImageURL}
	if profile.SpotifyURL != "" {
		item.Links = []Link{{Label: "Open on Spotify", URL: profile.SpotifyURL}}
	}
	s.Items = []Item{item}
	s.Lines = []string{
		"Spotify ID: " + profile.ID,
		"Followers: " + followers,
	}
	return s
}

func ProjectTopArtists(artists []domain.Artist, err error) Section {
	s := Section{Title: "Top artists"}
	switch {
	case err != nil:
		s.Status = "Error loading artists. " + ProjectStatus(err).String()
		return s
	case len(artists) == 0:
		s.Status = "No top artists found."
		return s
	}

	for _, a := range artists {
		genres := "No genres listed"
		if len(a.Genres) > 0 {
			genres = strings.Join(a.Genres, ", ")
		}
		s.Items = append(s.Items, Item{Title: a.Name, Subtitle: genres, ImageURL: a.ImageURL})
	}
	return s
}

func ProjectTopTracks(tracks []domain.Track, err error) Section {
	s := Section{Title: "Top tracks"}
	switch {
	case err != nil:
		s.Status = "Error loading tracks. " + ProjectStatus(err).String()
		return s
	case len(tracks) == 0:
		s.Status = "No top tracks found."
		return s
	}

	for _, t := range tracks {
		item := Item{Title: t.Name, Subtitle: strings.Join(t.Artists, ", ")}
		if t.SpotifyURL != "" {
			item.Links = append(item.Links, Link{Label: "Spotify", URL: t.SpotifyURL})
		}
		if t.PreviewURL != "" {
			item.Links = append(item.Links, Link{Label: "Preview", URL: t.PreviewURL})
		}
		s.Items = append(s.Items, item)
	}
	return s
}

// ProjectTasteProfile renders the locally built taste profile.
func ProjectTasteProfile(profile *domain.TasteProfile, err error) Section {
	s := Section{Title: "Taste profile"}
	switch {
	case err != nil:
		s.Status = "Error loading taste profile. " + ProjectStatus(err).String()
		return s
	case profile == nil:
		s.Status = "No taste profile available."
		return s
	}

	if profile.Summary != "" {
		s.Lines = append(s.Lines, profile.Summary)
	}
	if len(profile.FavoriteGenres) > 0 {
		s.Lines = append(s.Lines, "Favorite genres: "+strings.Join(profile.FavoriteGenres, ", "))
	}
	if len(profile.FavoriteArtists) > 0 {
		s.Lines = append(s.Lines, "Favorite artists: "+strings.Join(profile.FavoriteArtists, ", "))
	}
	for _, t := range profile.SampleTracks {
		s.Items = append(s.Items, Item{Title: t.Name, Subtitle: t.Artist})
	}
	return s
}

// ProjectRemoteTasteProfile renders the match service's taste profile as
// pretty JSON, or the raw error body.
func ProjectRemoteTasteProfile(result *domain.TasteProfileResult, err error) Section {
	s := Section{Title: "Taste profile (match service)"}
	if err != nil {
		s.Status = "Error from match service. " + ProjectStatus(err).String()

		var httpErr *domain.HTTPError
		if errors.As(err, &httpErr) {
			s.Code = httpErr.Body.Raw
		}
		return s
	}
	if result == nil {
		s.Status = "No taste profile available."
		return s
	}

	s.Status = "Taste profile loaded from match service ✅"
	s.Code = result.Body.Pretty()
	return s
}
