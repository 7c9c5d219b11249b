package app

import (
	"context"
	"errors"
	"strings"

	"github.com/jpp0ca/MusicSoulmate/internal/domain"
	"github.com/jpp0ca/MusicSoulmate/internal/logger"
	"github.com/jpp0ca/MusicSoulmate/internal/ports"
	"github.com/jpp0ca/MusicSoulmate/internal/session"
	"github.com/jpp0ca/MusicSoulmate/internal/view"
)

// Finder drives the match finder: each user action goes through the match
// API, lands in the session store, and is read back as a projected screen.
type Finder struct {
	api   ports.MatchAPI
	store *session.Store
}

// NewFinder creates a finder. A nil store gets a fresh one.
func NewFinder(api ports.MatchAPI, store *session.Store) *Finder {
	if store == nil {
		store = session.NewStore()
	}
	return &Finder{api: api, store: store}
}

// Store exposes the session the finder writes to.
func (f *Finder) Store() *session.Store {
	return f.store
}

// Search runs a whole search: BeginSearch followed by CompleteSearch.
func (f *Finder) Search(ctx context.Context, userID, limitInput string) error {
	seq, err := f.BeginSearch(userID, limitInput)
	if err != nil {
		return err
	}
	return f.CompleteSearch(ctx, seq, userID, limitInput)
}

// BeginSearch validates the input and starts a new search in the store. An
// empty user id is rejected without touching the session.
func (f *Finder) BeginSearch(userID, limitInput string) (uint64, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return 0, &domain.ValidationError{
			Field:   "user_id",
			Message: "Missing user_id. Please enter a user_id (example: briana_test_002).",
		}
	}

	return f.store.BeginNewSearch(userID, domain.CoerceLimit(limitInput)), nil
}

// CompleteSearch fetches the matches of search seq and stores the outcome.
// It returns session.ErrStale when a newer search started meanwhile.
func (f *Finder) CompleteSearch(ctx context.Context, seq uint64, userID, limitInput string) error {
	list, err := f.api.FetchMatches(ctx, userID, limitInput)
	if err != nil {
		if staleErr := f.store.FailSearch(seq, err); staleErr != nil {
			logger.Debug("dropping failed search", "seq", seq, "error", err)
			return staleErr
		}
		return err
	}

	if err := f.store.ApplyMatchResults(seq, list); err != nil {
		logger.Debug("dropping late search results", "seq", seq, "user_id", userID)
		return err
	}

	logger.Debug("search complete", "seq", seq, "user_id", list.ForUserID, "matches", len(list.Matches))
	return nil
}

// SelectMatch loads the profile panel for userID.
func (f *Finder) SelectMatch(ctx context.Context, userID string) error {
	return f.CompleteProfile(ctx, f.BeginProfile(userID), userID)
}

func (f *Finder) BeginProfile(userID string) uint64 {
	return f.store.BeginProfile(strings.TrimSpace(userID))
}

func (f *Finder) CompleteProfile(ctx context.Context, seq uint64, userID string) error {
	profile, err := f.api.FetchProfile(ctx, userID)
	if err != nil {
		if staleErr := f.store.FailProfile(seq, err); staleErr != nil {
			return staleErr
		}
		return err
	}

	return f.store.ApplyProfile(seq, profile)
}

// Connect connects the queried user to toUserID. A second connect to the
// same user within a search is answered from the session without a call.
func (f *Finder) Connect(ctx context.Context, toUserID string) (*domain.ConnectAck, error) {
	seq, from := f.store.Current()

	ack, err := f.api.Connect(ctx, from, toUserID, f.store)
	if err != nil {
		return nil, err
	}

	if err := f.store.RecordConnectionAt(seq, ack.ToUserID); err != nil {
		if errors.Is(err, session.ErrStale) {
			logger.Debug("connect finished after a new search", "to_user_id", ack.ToUserID)
		}
		return ack, err
	}

	if !ack.Cached {
		logger.Info("connected", "from_user_id", ack.FromUserID, "to_user_id", ack.ToUserID)
	}
	return ack, nil
}

// Clear forgets the current search entirely.
func (f *Finder) Clear() {
	f.store.Reset()
}

// Screen projects the current session.
func (f *Finder) Screen() view.Screen {
	return view.ProjectScreen(f.store.Snapshot())
}

func (f *Finder) PostTasteProfile(ctx context.Context, items domain.TasteItems) (*domain.TasteProfileResult, error) {
	return f.api.PostTasteProfile(ctx, items)
}
