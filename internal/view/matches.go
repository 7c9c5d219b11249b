// Package view projects session state and request outcomes into renderable
// view models. Every function here is pure: the same inputs always give the
// same view, and a render replaces the previous one entirely.
package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jpp0ca/MusicSoulmate/internal/domain"
)

const (
	NoMatchesPlaceholder = "No matches found."
	NoMatchesSummary     = "No matches returned."

	ConnectLabel   = "Connect"
	ConnectedLabel = "Connected ✓"

	// samples shown per explain category
	maxSamples = 3
)

// Button is the state of a row's connect button.
type Button struct {
	Label    string
	Disabled bool
}

// MatchRow is one rendered match.
type MatchRow struct {
	UserID  string
	Name    string
	Counts  string
	Label   string
	Explain *Explain
	Button  Button
}

// MatchListView is either a list of rows or a single placeholder.
type MatchListView struct {
	Rows        []MatchRow
	Placeholder string
}

// Summary is the panel describing the best match. It is hidden until a
// search returned a sequence.
type Summary struct {
	Visible bool
	Header  string
	Line    string
}

// Explain is the human-readable rationale of a match.
type Explain struct {
	Why     string
	Samples string
}

// ProjectMatchList renders matches in the order given.
func ProjectMatchList(matches []domain.MatchResult, queriedUserID string, connected domain.ConnectionSet) []MatchRow {
	rows := make([]MatchRow, 0, len(matches))
	for _, m := range matches {
		isConnected := connected != nil && connected.Has(m.UserID)

		button := Button{Label: ConnectLabel}
		if isConnected {
			button.Label = ConnectedLabel
		}
		button.Disabled = isConnected || m.UserID == queriedUserID

		row := MatchRow{
			UserID: m.UserID,
			Name:   m.Name(),
			Counts: fmt.Sprintf("%d shared artists • %d shared genres • %d shared tracks",
				m.ArtistCount(), m.GenreCount(), m.TrackCount()),
			Label:  MatchLabel(m),
			Button: button,
		}
		if e, ok := ProjectExplain(m); ok {
			row.Explain = &e
		}

		rows = append(rows, row)
	}
	return rows
}

// ProjectMatchListView renders the list, or the placeholder when it is empty.
func ProjectMatchListView(matches []domain.MatchResult, queriedUserID string, connected domain.ConnectionSet) MatchListView {
	if len(matches) == 0 {
		return MatchListView{Placeholder: NoMatchesPlaceholder}
	}
	return MatchListView{Rows: ProjectMatchList(matches, queriedUserID, connected)}
}

// MatchLabel prefers the match percent and falls back to the legacy score.
func MatchLabel(m domain.MatchResult) string {
	if m.MatchPercent != nil {
		return "Match " + formatNumber(*m.MatchPercent) + "%"
	}

	score := 0.0
	if m.Score != nil {
		score = *m.Score
	}
	return "Score " + formatNumber(score) + "%"
}

// ProjectSummaryLine describes the first match only. A nil list, or a payload
// that was not a sequence, hides the panel.
func ProjectSummaryLine(list *domain.MatchList, queriedUserID string, limit int) Summary {
	if list == nil || !list.IsList {
		return Summary{}
	}

	s := Summary{
		Visible: true,
		Header:  fmt.Sprintf("For: %s • Limit: %d", queriedUserID, limit),
	}

	if len(list.Matches) == 0 {
		s.Line = NoMatchesSummary
		return s
	}

	top := list.Matches[0]
	s.Line = fmt.Sprintf("Top match: %s (@%s) — %d shared artists — %d shared genres — %s",
		top.Name(), top.UserID, top.ArtistCount(), top.GenreCount(), MatchLabel(top))
	return s
}

type explainCategory struct {
	name    string
	title   string
	count   *int
	samples []string
}

// ProjectExplain builds the "Why" lines. It reports false when the backend
// sent no explain, so no rationale is ever made up.
func ProjectExplain(m domain.MatchResult) (Explain, bool) {
	if m.Explain == nil {
		return Explain{}, false
	}

	categories := []explainCategory{
		{"artists", "Artists", m.SharedArtistCount, m.Explain.SharedArtistsSample},
		{"genres", "Genres", m.SharedGenreCount, m.Explain.SharedGenresSample},
		{"tracks", "Tracks", m.SharedTrackCount, m.Explain.SharedTracksSample},
	}

	var why, samples []string
	for _, c := range categories {
		count := len(c.samples)
		if c.count != nil {
			count = *c.count
		}

		part := fmt.Sprintf("+%d %s", count, c.name)
		shown := capSamples(c.samples)
		if len(shown) > 0 {
			part += " (" + strings.Join(shown, ", ") + ")"
			samples = append(samples, c.title+": "+strings.Join(shown, ", "))
		}
		why = append(why, part)
	}

	return Explain{
		Why:     "Why: " + strings.Join(why, " · "),
		Samples: strings.Join(samples, " • "),
	}, true
}

func capSamples(samples []string) []string {
	if len(samples) > maxSamples {
		return samples[:maxSamples]
	}
	return samples
}

// formatNumber prints 87 as "87" and 87.5 as "87.5".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
