// Package session holds what the user is currently looking at: the queried
// user, its match list, the users connected to during this search, and the
// profile panel. Every search and profile lookup is tagged with a sequence
// number so that a late response for an older request cannot overwrite newer
// state.
package session

import (
	"errors"
	"sync"

	"github.com/jpp0ca/MusicSoulmate/internal/domain"
)

// ErrStale is returned when a completion belongs to a request that has since
// been superseded. Callers drop the result.
var ErrStale = errors.New("stale response discarded")

// ConnectedSet is the set of user ids connected to in the current search.
type ConnectedSet map[string]struct{}

func (s ConnectedSet) Has(userID string) bool {
	_, ok := s[userID]
	return ok
}

// Profile is the state of the profile drill-down panel.
type Profile struct {
	UserID  string
	Loading bool
	Lookup  *domain.ProfileLookup
	Err     error
}

// Snapshot is a copy of the store safe to hand to the view projector.
type Snapshot struct {
	Seq           uint64
	QueriedUserID string
	Limit         int
	Searching     bool
	// List is nil until the current search completes successfully.
	List        *domain.MatchList
	Matches     []domain.MatchResult
	SearchErr   error
	ConnectedTo ConnectedSet
	Profile     Profile
}

// Store is the Session State Store. It is safe for concurrent use.
type Store struct {
	mu sync.Mutex

	seq        uint64
	profileSeq uint64

	queriedUserID string
	limit         int
	searching     bool
	list          *domain.MatchList
	matches       []domain.MatchResult
	searchErr     error
	connectedTo   ConnectedSet
	profile       Profile
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{connectedTo: ConnectedSet{}}
}

// BeginNewSearch starts a search for userID. It clears the matches, the
// connected set and the profile panel, and returns the search's sequence
// number.
func (s *Store) BeginNewSearch(userID string, limit int) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.profileSeq++
	s.queriedUserID = userID
	s.limit = limit
	s.searching = true
	s.list = nil
	s.matches = nil
	s.searchErr = nil
	s.connectedTo = ConnectedSet{}
	s.profile = Profile{}

	return s.seq
}

// ApplyMatchResults replaces the matches wholesale. The connected set is
// left untouched.
func (s *Store) ApplyMatchResults(seq uint64, list *domain.MatchList) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return ErrStale
	}

	s.searching = false
	s.searchErr = nil
	s.list = list
	s.matches = nil
	if list != nil {
		s.matches = list.Matches
		if list.Limit > 0 {
			s.limit = list.Limit
		}
	}

	return nil
}

// FailSearch records a failed search. Matches and the profile panel are
// cleared so nothing from an earlier search stays visible.
func (s *Store) FailSearch(seq uint64, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return ErrStale
	}

	s.searching = false
	s.searchErr = err
	s.list = nil
	s.matches = nil
	s.profileSeq++
	s.profile = Profile{}

	return nil
}

// RecordConnection adds target to the connected set. Adding twice is a no-op.
func (s *Store) RecordConnection(target string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.connectedTo[target] = struct{}{}
}

// RecordConnectionAt is RecordConnection for a connect issued during search
// seq. It returns ErrStale if another search has started since.
func (s *Store) RecordConnectionAt(seq uint64, target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return ErrStale
	}
	s.connectedTo[target] = struct{}{}
	return nil
}

// Has reports whether userID was connected to in the current search. It makes
// the store usable as a domain.ConnectionSet.
func (s *Store) Has(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.connectedTo.Has(userID)
}

// Current returns the search sequence number and the queried user id read
// under one lock.
func (s *Store) Current() (seq uint64, queriedUserID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.seq, s.queriedUserID
}

// QueriedUserID returns the user id of the current search.
func (s *Store) QueriedUserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.queriedUserID
}

// BeginProfile marks the profile panel as loading userID. The last issued
// lookup wins, whatever order the responses arrive in.
func (s *Store) BeginProfile(userID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profileSeq++
	s.profile = Profile{UserID: userID, Loading: true}

	return s.profileSeq
}

func (s *Store) ApplyProfile(seq uint64, lookup *domain.ProfileLookup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.profileSeq {
		return ErrStale
	}
	s.profile.Loading = false
	s.profile.Lookup = lookup
	s.profile.Err = nil

	return nil
}

func (s *Store) FailProfile(seq uint64, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.profileSeq {
		return ErrStale
	}
	s.profile.Loading = false
	s.profile.Lookup = nil
	s.profile.Err = err

	return nil
}

// Reset clears everything. Sequence numbers keep counting so that requests
// still in flight are discarded when they complete.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.profileSeq++
	s.queriedUserID = ""
	s.limit = 0
	s.searching = false
	s.list = nil
	s.matches = nil
	s.searchErr = nil
	s.connectedTo = ConnectedSet{}
	s.profile = Profile{}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	connected := make(ConnectedSet, len(s.connectedTo))
	for id := range s.connectedTo {
		connected[id] = struct{}{}
	}

	var matches []domain.MatchResult
	if s.matches != nil {
		matches = make([]domain.MatchResult, len(s.matches))
		copy(matches, s.matches)
	}

	return Snapshot{
		Seq:           s.seq,
		QueriedUserID: s.queriedUserID,
		Limit:         s.limit,
		Searching:     s.searching,
		List:          s.list,
		Matches:       matches,
		SearchErr:     s.searchErr,
		ConnectedTo:   connected,
		Profile:       s.profile,
	}
}
