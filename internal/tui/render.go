package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jpp0ca/MusicSoulmate/internal/view"
)

func (m *Model) View() string {
	screen := m.finder.Screen()

	var b strings.Builder

	b.WriteString(titleStyle.Render("♫ Music Soulmate Finder"))
	b.WriteString("\n")

	b.WriteString(m.inputsView())
	b.WriteString("\n\n")

	b.WriteString(m.statusView(screen.Status))
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(subtleStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if screen.Summary.Visible {
		b.WriteString(panelStyle.Render(screen.Summary.Header + "\n" + screen.Summary.Line))
		b.WriteString("\n\n")
	}

	b.WriteString(m.listView(screen.List))

	if screen.Profile.Visible {
		b.WriteString("\n")
		b.WriteString(m.profileView(screen.Profile))
	}

	b.WriteString(helpStyle.Render(
		"[Enter: Search/Profile] [Tab: Focus] [↑/↓: Move] [c: Connect] [Ctrl+S: Sample] [Ctrl+L: Clear] [Esc: Quit]"))

	return b.String()
}

func (m *Model) inputsView() string {
	label := func(f focus, text string) string {
		if m.focus == f {
			return focusedLabelStyle.Render(text)
		}
		return labelStyle.Render(text)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		label(focusUserID, "● ")+m.userID.View(),
		"   ",
		label(focusLimit, "● ")+m.limit.View(),
	)
}

func (m *Model) statusView(status view.Status) string {
	dot := statusStyle(status.Level).Render("●")
	if status.Level == view.LevelLoading {
		dot = m.spinner.View()
	}
	return dot + " " + status.String()
}

func (m *Model) listView(list view.MatchListView) string {
	if list.Placeholder != "" {
		return subtleStyle.Render(list.Placeholder) + "\n"
	}

	var b strings.Builder
	for i, row := range list.Rows {
		style := rowStyle
		if m.focus == focusList && i == m.cursor {
			style = rowSelectedStyle
		}

		button := buttonStyle.Render(row.Button.Label)
		if row.Button.Disabled {
			button = buttonDisabledStyle.Render(row.Button.Label)
		}

		lines := []string{
			lipgloss.JoinHorizontal(lipgloss.Top, row.Name+" (@"+row.UserID+")  ", labelStyle.Render(row.Label), "  ", button),
			labelStyle.Render(row.Counts),
		}
		if row.Explain != nil {
			lines = append(lines, subtleStyle.Render(row.Explain.Why))
			if row.Explain.Samples != "" {
				lines = append(lines, subtleStyle.Render(row.Explain.Samples))
			}
		}

		b.WriteString(style.Render(strings.Join(lines, "\n")))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) profileView(panel view.ProfilePanel) string {
	content := panel.Status.String()
	if panel.Status.Level == view.LevelLoading {
		content = m.spinner.View() + " " + content
	}
	if panel.Body != "" {
		content = m.renderProfile(panel.Body)
	}

	return panelStyle.Render(focusedLabelStyle.Render(panel.Title) + "\n" + content)
}

// renderProfile renders a profile body through glamour, caching the result
// since View runs on every frame.
func (m *Model) renderProfile(body string) string {
	if body == m.profileSource {
		return m.profileRendered
	}

	m.profileSource = body
	m.profileRendered = body
	if m.glamourRenderer != nil {
		if out, err := m.glamourRenderer.Render(profileMarkdown(body)); err == nil {
			m.profileRendered = strings.TrimSpace(out)
		}
	}
	return m.profileRendered
}

// wraps a JSON or text body in a fenced block
func profileMarkdown(body string) string {
	lang := ""
	if strings.HasPrefix(strings.TrimSpace(body), "{") || strings.HasPrefix(strings.TrimSpace(body), "[") {
		lang = "json"
	}
	return "```" + lang + "\n" + body + "\n```\n"
}
