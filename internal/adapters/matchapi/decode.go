package matchapi

import (
	"github.com/tidwall/gjson"

	"github.com/jpp0ca/MusicSoulmate/internal/domain"
)

// decodeMatchList normalizes a matches payload. The service answers either
// {for_user_id, limit, matches: [...]} or a bare array; keys may come in
// snake_case or camelCase depending on the backend version. Anything else is
// kept as a non-list payload.
func decodeMatchList(body domain.Body, forUserID string, limit int) *domain.MatchList {
	list := &domain.MatchList{ForUserID: forUserID, Limit: limit, Body: body}
	if !body.JSON {
		return list
	}

	root := gjson.Parse(body.Raw)
	items := root
	if root.IsObject() {
		if v := first(root, "for_user_id", "forUserId"); v.Type == gjson.String && v.Str != "" {
			list.ForUserID = v.Str
		}
		if v := first(root, "limit"); v.Type == gjson.Number && v.Int() > 0 {
			list.Limit = int(v.Int())
		}
		items = first(root, "matches")
	}

	if !items.IsArray() {
		return list
	}

	list.IsList = true
	list.Matches = []domain.MatchResult{}
	items.ForEach(func(_, v gjson.Result) bool {
		list.Matches = append(list.Matches, decodeMatch(v))
		return true
	})

	return list
}

func decodeMatch(v gjson.Result) domain.MatchResult {
	m := domain.MatchResult{
		UserID:            first(v, "user_id", "userId").String(),
		DisplayName:       first(v, "display_name", "displayName").String(),
		SharedArtistCount: optInt(first(v, "shared_artist_count", "sharedArtistCount", "counts.artists")),
		SharedGenreCount:  optInt(first(v, "shared_genre_count", "sharedGenreCount", "counts.genres")),
		SharedTrackCount:  optInt(first(v, "shared_track_count", "sharedTrackCount", "counts.tracks")),
		MatchPercent:      optFloat(first(v, "match_percent", "matchPercent")),
		Score:             optFloat(first(v, "score")),
	}

	if e := first(v, "explain"); e.IsObject() {
		m.Explain = &domain.Explain{
			SharedArtistsSample: strs(first(e, "shared_artists_sample", "sharedArtistsSample")),
			SharedGenresSample:  strs(first(e, "shared_genres_sample", "sharedGenresSample")),
			SharedTracksSample:  strs(first(e, "shared_tracks_sample", "sharedTracksSample")),
		}
	}

	return m
}

// first returns the first path that holds a non-null value.
func first(v gjson.Result, paths ...string) gjson.Result {
	for _, p := range paths {
		if r := v.Get(p); r.Exists() && r.Type != gjson.Null {
			return r
		}
	}
	return gjson.Result{}
}

func optInt(r gjson.Result) *int {
	if r.Type != gjson.Number {
		return nil
	}
	n := int(r.Int())
	if n < 0 {
		n = 0
	}
	return &n
}

func optFloat(r gjson.Result) *float64 {
	if r.Type != gjson.Number {
		return nil
	}
	f := r.Float()
	return &f
}

func strs(r gjson.Result) []string {
	if !r.IsArray() {
		return nil
	}
	var out []string
	r.ForEach(func(_, item gjson.Result) bool {
		if s := item.String(); s != "" {
			out = append(out, s)
		}
		return true
	})
	return out
}
