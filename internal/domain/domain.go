package domain

// MatchResult is one candidate match returned by the match API. Optional
// numeric fields are pointers so that "absent" can be told apart from zero.
type MatchResult struct {
	UserID            string   `json:"user_id"`
	DisplayName       string   `json:"display_name,omitempty"`
	SharedArtistCount *int     `json:"shared_artist_count,omitempty"`
	SharedGenreCount  *int     `json:"shared_genre_count,omitempty"`
	SharedTrackCount  *int     `json:"shared_track_count,omitempty"`
	MatchPercent      *float64 `json:"match_percent,omitempty"`
	Score             *float64 `json:"score,omitempty"`
	Explain           *Explain `json:"explain,omitempty"`
}

// Explain carries backend-supplied samples justifying a match.
type Explain struct {
	SharedArtistsSample []string `json:"shared_artists_sample,omitempty"`
	SharedGenresSample  []string `json:"shared_genres_sample,omitempty"`
	SharedTracksSample  []string `json:"shared_tracks_sample,omitempty"`
}

// Name returns the display name, falling back to the user id.
func (m MatchResult) Name() string {
	if m.DisplayName != "" {
		return m.DisplayName
	}
	return m.UserID
}

func (m MatchResult) ArtistCount() int { return intOrZero(m.SharedArtistCount) }
func (m MatchResult) GenreCount() int  { return intOrZero(m.SharedGenreCount) }
func (m MatchResult) TrackCount() int  { return intOrZero(m.SharedTrackCount) }

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// MatchList is the normalized success payload of a matches fetch. IsList is
// false when the payload was not a sequence at all (raw text, or an object
// without a matches array); that is different from an empty sequence.
type MatchList struct {
	ForUserID string        `json:"for_user_id"`
	Limit     int           `json:"limit"`
	Matches   []MatchResult `json:"matches"`
	IsList    bool          `json:"-"`
	Body      Body          `json:"-"`
}

// ProfileLookup is the arbitrary JSON profile returned by /profiles/{id}.
type ProfileLookup struct {
	UserID string
	Body   Body
}

// ConnectRequest is the body of POST /connect.
type ConnectRequest struct {
	FromUserID string `json:"fromUserId" validate:"required"`
	ToUserID   string `json:"toUserId" validate:"required,nefield=FromUserID"`
}

// ConnectAck is the acknowledgement of a connect call. Cached is set when the
// call was served from the session's connected set without a network call.
type ConnectAck struct {
	FromUserID string
	ToUserID   string
	Cached     bool
	Body       Body
}

// ConnectionSet reports whether a user was already connected to in this session.
type ConnectionSet interface {
	Has(userID string) bool
}

// -- Local backend payloads --------------------------------------------------

// UserProfile is the simplified Spotify profile served by /me.
type UserProfile struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	SpotifyURL  string `json:"spotify_url,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Followers   *int   `json:"followers,omitempty"`
}

// Artist is one of the user's top artists.
type Artist struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	ImageURL string   `json:"image_url,omitempty"`
	Genres   []string `json:"genres"`
}

// Track is one of the user's top tracks.
type Track struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Artists    []string `json:"artists"`
	SpotifyURL string   `json:"spotify_url,omitempty"`
	PreviewURL string   `json:"preview_url,omitempty"`
}

// SampleTrack is a track name paired with its main artist.
type SampleTrack struct {
	Name   string `json:"name"`
	Artist string `json:"artist"`
}

// TasteProfile summarizes a listener's favorite genres, artists and tracks.
type TasteProfile struct {
	FavoriteGenres  []string      `json:"favorite_genres"`
	FavoriteArtists []string      `json:"favorite_artists"`
	SampleTracks    []SampleTrack `json:"sample_tracks"`
	Summary         string        `json:"summary"`
}

type MeResponse struct {
	Profile *UserProfile `json:"profile"`
}

type TopArtistsResponse struct {
	TopArtists []Artist `json:"top_artists"`
}

type TopTracksResponse struct {
	TopTracks []Track `json:"top_tracks"`
}

type TasteProfileResponse struct {
	TasteProfile *TasteProfile `json:"taste_profile"`
}

// TasteItems is the input of the remote POST /taste-profile.
type TasteItems struct {
	UserID     string   `json:"user_id"`
	TopArtists []string `json:"top_artists"`
	TopGenres  []string `json:"top_genres"`
	TopTracks  []string `json:"top_tracks"`
}

// TasteProfileRequest wraps TasteItems the way the remote handler expects.
type TasteProfileRequest struct {
	Items TasteItems `json:"items"`
}

// TasteProfileResult is the remote taste profile, kept as arbitrary JSON.
type TasteProfileResult struct {
	Body Body
}
