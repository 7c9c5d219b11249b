package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/glamour"

	"github.com/jpp0ca/MusicSoulmate/internal/app"
	"github.com/jpp0ca/MusicSoulmate/internal/domain"
)

// which part of the screen receives key presses
type focus int

const (
	focusUserID focus = iota
	focusLimit
	focusList
)

// main TUI application model
type Model struct {
	finder *app.Finder

	userID  textinput.Model
	limit   textinput.Model
	spinner spinner.Model
	focus   focus
	cursor  int
	width   int
	height  int

	// outcome of the last action that is not part of the session, such as
	// a rejected search or a connect
	notice string

	glamourRenderer *glamour.TermRenderer
	profileSource   string
	profileRendered string
}

// sent when a search completes
type searchDoneMsg struct {
	seq uint64
	err error
}

// sent when a profile lookup completes
type profileDoneMsg struct {
	seq uint64
	err error
}

// sent when a connect completes
type connectDoneMsg struct {
	to  string
	ack *domain.ConnectAck
	err error
}
