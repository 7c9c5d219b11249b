package ports

import (
	"context"

	"github.com/jpp0ca/MusicSoulmate/internal/domain"
)

// ListeningSource defines the contract of a streaming service adapter that
// exposes a listener's profile and listening history. This is the driven
// port of the local taste backend.
type ListeningSource interface {
	// CurrentUser returns the profile of the user owning token.
	CurrentUser(ctx context.Context, token string) (*domain.UserProfile, error)

	// TopArtists returns up to limit of the user's top artists, best first.
	TopArtists(ctx context.Context, token string, limit int) ([]domain.Artist, error)

	// TopTracks returns up to limit of the user's top tracks, best first.
	TopTracks(ctx context.Context, token string, limit int) ([]domain.Track, error)

	// Name returns the provider identifier (e.g., "spotify").
	Name() string
}

// TasteService defines the driving port of the local taste backend.
type TasteService interface {
	Profile(ctx context.Context, token string) (*domain.UserProfile, error)
	TopArtists(ctx context.Context, token string) ([]domain.Artist, error)
	TopTracks(ctx context.Context, token string) ([]domain.Track, error)

	// TasteProfile summarizes favorite genres, artists and sample tracks.
	TasteProfile(ctx context.Context, token string) (*domain.TasteProfile, error)
}

// MatchAPI is the Request Layer of the remote match service. Every method
// returns nil or one of *domain.ValidationError, *domain.HTTPError,
// *domain.NetworkError.
type MatchAPI interface {
	// FetchMatches lists candidate matches for userID. limitInput is raw user
	// input and is coerced to a positive integer, 10 by default.
	FetchMatches(ctx context.Context, userID, limitInput string) (*domain.MatchList, error)

	FetchProfile(ctx context.Context, userID string) (*domain.ProfileLookup, error)

	// Connect records a connection from one user to another. It is served
	// locally, without a network call, when toUserID is already in connected.
	Connect(ctx context.Context, fromUserID, toUserID string, connected domain.ConnectionSet) (*domain.ConnectAck, error)

	PostTasteProfile(ctx context.Context, items domain.TasteItems) (*domain.TasteProfileResult, error)
}

// LocalAPI is the Request Layer of the local taste backend.
type LocalAPI interface {
	Me(ctx context.Context) (*domain.UserProfile, error)
	TopArtists(ctx context.Context) ([]domain.Artist, error)
	TopTracks(ctx context.Context) ([]domain.Track, error)
	TasteProfile(ctx context.Context) (*domain.TasteProfile, error)
}
