package view

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jpp0ca/MusicSoulmate/internal/domain"
	"github.com/jpp0ca/MusicSoulmate/internal/session"
)

// Level drives the color of the status indicator.
type Level string

const (
	LevelIdle    Level = "idle"
	LevelLoading Level = "loading"
	LevelOK      Level = "ok"
	LevelError   Level = "error"
)

const (
	notFoundHint = "record not found upstream"
	networkHint  = "the service could not be reached; check the base URL, and if it works from curl but not from a browser it is almost always CORS"
)

// Status is the banner shown after an action.
type Status struct {
	Level  Level
	Text   string
	Detail string
	Hint   string
}

// String renders the banner on one line.
func (s Status) String() string {
	out := s.Text
	if s.Detail != "" {
		out += ": " + s.Detail
	}
	if s.Hint != "" {
		out += " (" + s.Hint + ")"
	}
	return out
}

func Idle(text string) Status {
	return Status{Level: LevelIdle, Text: text}
}

func Loading() Status {
	return Status{Level: LevelLoading, Text: "Loading…"}
}

// ProjectStatus turns a request outcome into a banner. A nil error is success.
func ProjectStatus(err error) Status {
	if err == nil {
		return Status{Level: LevelOK, Text: "Success"}
	}

	var (
		validationErr *domain.ValidationError
		httpErr       *domain.HTTPError
		networkErr    *domain.NetworkError
	)

	switch {
	case errors.As(err, &validationErr):
		return Status{Level: LevelError, Text: validationErr.Message}

	case errors.As(err, &httpErr):
		s := Status{
			Level:  LevelError,
			Text:   fmt.Sprintf("HTTP %d", httpErr.StatusCode),
			Detail: httpErr.Message(),
		}
		if s.Detail == "" {
			s.Detail = strings.TrimSpace(httpErr.Body.Raw)
		}
		if httpErr.StatusCode == http.StatusNotFound {
			s.Hint = notFoundHint
		}
		return s

	case errors.As(err, &networkErr):
		return Status{
			Level:  LevelError,
			Text:   "Network error",
			Detail: networkErr.Err.Error(),
			Hint:   networkHint,
		}
	}

	return Status{Level: LevelError, Text: "Error", Detail: err.Error()}
}

// ProfilePanel is the drill-down panel of a selected match.
type ProfilePanel struct {
	Visible bool
	Title   string
	Status  Status
	Body    string
}

// ProjectProfilePanel renders the profile lookup state.
func ProjectProfilePanel(p session.Profile) ProfilePanel {
	if p.UserID == "" {
		return ProfilePanel{}
	}

	panel := ProfilePanel{Visible: true, Title: "Profile: @" + p.UserID}
	switch {
	case p.Loading:
		panel.Status = Loading()
	case p.Err != nil:
		panel.Status = ProjectStatus(p.Err)
	case p.Lookup != nil:
		panel.Status = ProjectStatus(nil)
		panel.Body = p.Lookup.Body.Pretty()
	}
	return panel
}

// Screen is the full match finder view.
type Screen struct {
	Status  Status
	Summary Summary
	List    MatchListView
	Profile ProfilePanel
}

// ProjectScreen derives the whole screen from a session snapshot.
func ProjectScreen(snap session.Snapshot) Screen {
	screen := Screen{
		Summary: ProjectSummaryLine(snap.List, snap.QueriedUserID, snap.Limit),
		List:    ProjectMatchListView(snap.Matches, snap.QueriedUserID, snap.ConnectedTo),
		Profile: ProjectProfilePanel(snap.Profile),
	}

	switch {
	case snap.Searching:
		screen.Status = Loading()
	case snap.SearchErr != nil:
		screen.Status = ProjectStatus(snap.SearchErr)
	case snap.List != nil:
		screen.Status = ProjectStatus(nil)
	default:
		screen.Status = Idle("Enter a user_id to find matches")
	}

	return screen
}
