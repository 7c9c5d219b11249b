package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jpp0ca/MusicSoulmate/internal/app"
	"github.com/jpp0ca/MusicSoulmate/internal/logger"
	"github.com/jpp0ca/MusicSoulmate/internal/session"
	"github.com/jpp0ca/MusicSoulmate/internal/view"
)

const (
	sampleUserID = "briana_test_002"
	sampleLimit  = "10"
)

// NewApp creates the match finder TUI on top of finder.
func NewApp(finder *app.Finder) *Model {
	userID := textinput.New()
	userID.Placeholder = sampleUserID
	userID.Prompt = "user_id › "
	userID.PromptStyle = lipgloss.NewStyle().Foreground(colorLightGray)
	userID.TextStyle = lipgloss.NewStyle().Foreground(colorWhite)
	userID.CharLimit = 128
	userID.Width = 40
	userID.Focus()

	limit := textinput.New()
	limit.Placeholder = sampleLimit
	limit.Prompt = "limit › "
	limit.PromptStyle = lipgloss.NewStyle().Foreground(colorLightGray)
	limit.TextStyle = lipgloss.NewStyle().Foreground(colorWhite)
	limit.CharLimit = 6
	limit.Width = 8

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(colorYellow)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		logger.Warn("markdown renderer unavailable, showing raw profiles", "error", err)
		renderer = nil
	}

	return &Model{
		finder:          finder,
		userID:          userID,
		limit:           limit,
		spinner:         sp,
		focus:           focusUserID,
		glamourRenderer: renderer,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case searchDoneMsg:
		if errors.Is(msg.err, session.ErrStale) {
			return m, nil
		}
		m.cursor = 0
		if msg.err == nil && len(m.finder.Screen().List.Rows) > 0 {
			m.setFocus(focusList)
		}
		return m, nil

	case profileDoneMsg:
		return m, nil

	case connectDoneMsg:
		m.notice = connectNotice(msg)
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab":
		m.setFocus((m.focus + 1) % 3)
		return m, nil

	case "shift+tab":
		m.setFocus((m.focus + 2) % 3)
		return m, nil

	case "ctrl+l":
		m.finder.Clear()
		m.userID.SetValue("")
		m.limit.SetValue("")
		m.cursor = 0
		m.notice = ""
		m.setFocus(focusUserID)
		return m, nil

	case "ctrl+s":
		m.userID.SetValue(sampleUserID)
		m.limit.SetValue(sampleLimit)
		m.notice = "Sample loaded. Press enter to find matches."
		m.setFocus(focusUserID)
		return m, nil
	}

	if m.focus == focusList {
		return m.handleListKey(msg)
	}

	if msg.String() == "enter" {
		return m, m.startSearch()
	}

	return m.updateInputs(msg)
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.finder.Screen().List.Rows

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(rows)-1 {
			m.cursor++
		}

	case "enter", "p":
		if row, ok := m.selectedRow(rows); ok {
			seq := m.finder.BeginProfile(row.UserID)
			return m, runProfile(m.finder, seq, row.UserID)
		}

	case "c":
		if row, ok := m.selectedRow(rows); ok && !row.Button.Disabled {
			m.notice = "Connecting to @" + row.UserID + "…"
			return m, runConnect(m.finder, row.UserID)
		}
	}

	return m, nil
}

func (m *Model) startSearch() tea.Cmd {
	userID, limit := m.userID.Value(), m.limit.Value()

	seq, err := m.finder.BeginSearch(userID, limit)
	if err != nil {
		m.notice = view.ProjectStatus(err).String()
		return nil
	}

	m.notice = ""
	m.cursor = 0
	logger.Debug("search started", "seq", seq, "user_id", userID)
	return runSearch(m.finder, seq, userID, limit)
}

func (m *Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusUserID:
		m.userID, cmd = m.userID.Update(msg)
	case focusLimit:
		m.limit, cmd = m.limit.Update(msg)
	}
	return m, cmd
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	m.userID.Blur()
	m.limit.Blur()

	switch f {
	case focusUserID:
		m.userID.Focus()
	case focusLimit:
		m.limit.Focus()
	}
}

func (m *Model) selectedRow(rows []view.MatchRow) (view.MatchRow, bool) {
	if m.cursor < 0 || m.cursor >= len(rows) {
		return view.MatchRow{}, false
	}
	return rows[m.cursor], true
}

func connectNotice(msg connectDoneMsg) string {
	switch {
	case errors.Is(msg.err, session.ErrStale):
		return "Connection to @" + msg.to + " finished after a new search."
	case msg.err != nil:
		return view.ProjectStatus(msg.err).String()
	case msg.ack.Cached:
		return "Already connected to @" + msg.to + "."
	default:
		return "Connected to @" + msg.to + "."
	}
}
