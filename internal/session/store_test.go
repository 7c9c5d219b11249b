package session

import (
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/jpp0ca/MusicSoulmate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listOf(ids ...string) *domain.MatchList {
	list := &domain.MatchList{IsList: true, Matches: []domain.MatchResult{}}
	for _, id := range ids {
		list.Matches = append(list.Matches, domain.MatchResult{UserID: id})
	}
	return list
}

func TestNewStore_Empty(t *testing.T) {
	snap := NewStore().Snapshot()

	assert.Zero(t, snap.Seq)
	assert.Empty(t, snap.QueriedUserID)
	assert.Nil(t, snap.List)
	assert.Empty(t, snap.ConnectedTo)
}

func TestBeginNewSearch_ClearsPreviousState(t *testing.T) {
	s := NewStore()
	seq := s.BeginNewSearch("a", 10)
	require.NoError(t, s.ApplyMatchResults(seq, listOf("u1", "u2")))
	s.RecordConnection("u1")
	s.BeginProfile("u2")

	next := s.BeginNewSearch("b", 5)

	snap := s.Snapshot()
	assert.Greater(t, next, seq)
	assert.Equal(t, "b", snap.QueriedUserID)
	assert.Equal(t, 5, snap.Limit)
	assert.True(t, snap.Searching)
	assert.Nil(t, snap.Matches)
	assert.False(t, snap.ConnectedTo.Has("u1"))
	assert.Empty(t, snap.Profile.UserID)
}

func TestApplyMatchResults_KeepsOrderAndConnections(t *testing.T) {
	s := NewStore()
	seq := s.BeginNewSearch("a", 10)
	s.RecordConnection("u2")

	require.NoError(t, s.ApplyMatchResults(seq, listOf("u3", "u1", "u2")))

	snap := s.Snapshot()
	assert.False(t, snap.Searching)
	assert.Equal(t, "u3", snap.Matches[0].UserID)
	assert.Equal(t, "u2", snap.Matches[2].UserID)
	assert.True(t, snap.ConnectedTo.Has("u2"))
}

func TestApplyMatchResults_StaleResponseIsDiscarded(t *testing.T) {
	s := NewStore()
	first := s.BeginNewSearch("a", 10)
	second := s.BeginNewSearch("b", 10)

	require.NoError(t, s.ApplyMatchResults(second, listOf("new")))
	err := s.ApplyMatchResults(first, listOf("old"))

	assert.ErrorIs(t, err, ErrStale)
	snap := s.Snapshot()
	assert.Equal(t, "b", snap.QueriedUserID)
	require.Len(t, snap.Matches, 1)
	assert.Equal(t, "new", snap.Matches[0].UserID)
}

func TestFailSearch_ClearsMatchesAndProfile(t *testing.T) {
	s := NewStore()
	seq := s.BeginNewSearch("a", 10)
	require.NoError(t, s.ApplyMatchResults(seq, listOf("u1")))

	seq = s.BeginNewSearch("a", 10)
	pseq := s.BeginProfile("u1")
	boom := errors.New("boom")
	require.NoError(t, s.FailSearch(seq, boom))

	snap := s.Snapshot()
	assert.Nil(t, snap.List)
	assert.Nil(t, snap.Matches)
	assert.Equal(t, boom, snap.SearchErr)
	assert.Empty(t, snap.Profile.UserID)
	assert.ErrorIs(t, s.ApplyProfile(pseq, &domain.ProfileLookup{UserID: "u1"}), ErrStale)
}

func TestFailSearch_Stale(t *testing.T) {
	s := NewStore()
	first := s.BeginNewSearch("a", 10)
	s.BeginNewSearch("b", 10)

	assert.ErrorIs(t, s.FailSearch(first, errors.New("late")), ErrStale)
	assert.NoError(t, s.Snapshot().SearchErr)
}

func TestRecordConnection_Idempotent(t *testing.T) {
	s := NewStore()
	s.BeginNewSearch("a", 10)

	s.RecordConnection("u1")
	s.RecordConnection("u1")

	assert.True(t, s.Has("u1"))
	assert.Len(t, s.Snapshot().ConnectedTo, 1)
}

func TestRecordConnectionAt_StaleAfterNewSearch(t *testing.T) {
	s := NewStore()
	seq := s.BeginNewSearch("a", 10)
	s.BeginNewSearch("b", 10)

	assert.ErrorIs(t, s.RecordConnectionAt(seq, "u1"), ErrStale)
	assert.False(t, s.Has("u1"))
}

func TestCurrent_PairsSeqWithQueriedUser(t *testing.T) {
	s := NewStore()
	seq, userID := s.Current()
	assert.Zero(t, seq)
	assert.Empty(t, userID)

	const searches = 200
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 1; i <= searches; i++ {
			s.BeginNewSearch(strconv.Itoa(i), 10)
		}
	}()

	for {
		select {
		case <-done:
			seq, userID := s.Current()
			assert.Equal(t, uint64(searches), seq)
			assert.Equal(t, strconv.Itoa(searches), userID)
			return
		default:
			seq, userID := s.Current()
			if seq > 0 {
				require.Equal(t, strconv.FormatUint(seq, 10), userID)
			}
		}
	}
}

func TestProfile_LastIssuedWins(t *testing.T) {
	s := NewStore()
	s.BeginNewSearch("a", 10)
	first := s.BeginProfile("u1")
	second := s.BeginProfile("u2")

	require.NoError(t, s.ApplyProfile(second, &domain.ProfileLookup{UserID: "u2"}))
	assert.ErrorIs(t, s.ApplyProfile(first, &domain.ProfileLookup{UserID: "u1"}), ErrStale)

	p := s.Snapshot().Profile
	assert.False(t, p.Loading)
	assert.Equal(t, "u2", p.UserID)
	assert.Equal(t, "u2", p.Lookup.UserID)
}

func TestFailProfile(t *testing.T) {
	s := NewStore()
	seq := s.BeginProfile("u1")

	require.NoError(t, s.FailProfile(seq, &domain.HTTPError{StatusCode: 500}))

	p := s.Snapshot().Profile
	assert.False(t, p.Loading)
	assert.Nil(t, p.Lookup)
	assert.Error(t, p.Err)
}

func TestReset(t *testing.T) {
	s := NewStore()
	seq := s.BeginNewSearch("a", 10)
	s.RecordConnection("u1")

	s.Reset()

	snap := s.Snapshot()
	assert.Empty(t, snap.QueriedUserID)
	assert.Empty(t, snap.ConnectedTo)
	assert.ErrorIs(t, s.ApplyMatchResults(seq, listOf("u1")), ErrStale)
}

func TestSnapshot_IsACopy(t *testing.T) {
	s := NewStore()
	seq := s.BeginNewSearch("a", 10)
	require.NoError(t, s.ApplyMatchResults(seq, listOf("u1")))
	s.RecordConnection("u1")

	snap := s.Snapshot()
	snap.ConnectedTo["u9"] = struct{}{}
	snap.Matches[0].UserID = "changed"

	again := s.Snapshot()
	assert.False(t, again.ConnectedTo.Has("u9"))
	assert.Equal(t, "u1", again.Matches[0].UserID)
}

func TestStore_ConcurrentUse(t *testing.T) {
	s := NewStore()
	seq := s.BeginNewSearch("a", 10)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.RecordConnection("u1")
			_ = s.Has("u1")
			_ = s.Snapshot()
		}()
	}
	wg.Wait()

	assert.NoError(t, s.RecordConnectionAt(seq, "u2"))
	assert.Len(t, s.Snapshot().ConnectedTo, 2)
}
