package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jpp0ca/MusicSoulmate/internal/app"
)

// The commands below run on bubbletea's goroutines. They only report back;
// every state transition already happened in the session store by the time
// the message reaches Update.

func runSearch(finder *app.Finder, seq uint64, userID, limit string) tea.Cmd {
	return func() tea.Msg {
		err := finder.CompleteSearch(context.Background(), seq, userID, limit)
		return searchDoneMsg{seq: seq, err: err}
	}
}

func runProfile(finder *app.Finder, seq uint64, userID string) tea.Cmd {
	return func() tea.Msg {
		err := finder.CompleteProfile(context.Background(), seq, userID)
		return profileDoneMsg{seq: seq, err: err}
	}
}

func runConnect(finder *app.Finder, to string) tea.Cmd {
	return func() tea.Msg {
		ack, err := finder.Connect(context.Background(), to)
		return connectDoneMsg{to: to, ack: ack, err: err}
	}
}
