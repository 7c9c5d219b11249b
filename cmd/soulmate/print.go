package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/jpp0ca/MusicSoulmate/internal/app"
	"github.com/jpp0ca/MusicSoulmate/internal/domain"
	"github.com/jpp0ca/MusicSoulmate/internal/view"
)

const defaultWidth = 80

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
)

// printer writes projections to a terminal or a pipe. JSON bodies go through
// glamour only when w is a terminal, so piped output stays plain.
type printer struct {
	w        io.Writer
	markdown *glamour.TermRenderer
}

func newPrinter(f *os.File) *printer {
	p := &printer{w: f}
	if !term.IsTerminal(f.Fd()) {
		return p
	}

	width := defaultWidth
	if w, _, err := term.GetSize(f.Fd()); err == nil && w > 0 {
		width = w
	}
	if r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width)); err == nil {
		p.markdown = r
	}
	return p
}

func (p *printer) println(a ...any) {
	fmt.Fprintln(p.w, a...) //nolint:errcheck
}

func (p *printer) status(s view.Status) {
	style := subtleStyle
	switch s.Level {
	case view.LevelOK:
		style = okStyle
	case view.LevelError:
		style = errStyle
	}
	p.println(style.Render("● ") + s.String())
}

func (p *printer) screen(screen view.Screen) {
	p.status(screen.Status)
	if screen.Summary.Visible {
		p.println()
		p.println(headingStyle.Render(screen.Summary.Header))
		p.println(screen.Summary.Line)
	}
	p.println()
	p.matchList(screen.List)
}

func (p *printer) matchList(list view.MatchListView) {
	if list.Placeholder != "" {
		p.println(subtleStyle.Render(list.Placeholder))
		return
	}

	for i, row := range list.Rows {
		button := "[" + row.Button.Label + "]"
		if row.Button.Disabled {
			button = subtleStyle.Render(button)
		}
		p.println(fmt.Sprintf("%2d. %s (@%s)  %s  %s", i+1, headingStyle.Render(row.Name), row.UserID, row.Label, button))
		p.println("    " + subtleStyle.Render(row.Counts))
		if row.Explain != nil {
			p.println("    " + row.Explain.Why)
			if row.Explain.Samples != "" {
				p.println("    " + subtleStyle.Render(row.Explain.Samples))
			}
		}
	}
}

func (p *printer) connected(ack *domain.ConnectAck) {
	if ack.Cached {
		p.println(okStyle.Render("✓ ") + "already connected to @" + ack.ToUserID)
		return
	}
	p.println(okStyle.Render("✓ ") + "connected @" + ack.FromUserID + " → @" + ack.ToUserID)
	if ack.Body.JSON || strings.TrimSpace(ack.Body.Raw) != "" {
		p.body(ack.Body)
	}
}

func (p *printer) profile(panel view.ProfilePanel) {
	p.println()
	p.println(headingStyle.Render(panel.Title))
	if panel.Body == "" {
		p.status(panel.Status)
		return
	}
	p.code(panel.Body, "json")
}

func (p *printer) body(b domain.Body) {
	lang := ""
	if b.JSON {
		lang = "json"
	}
	p.code(b.Pretty(), lang)
}

func (p *printer) code(text, lang string) {
	if p.markdown != nil {
		if out, err := p.markdown.Render("```" + lang + "\n" + text + "\n```\n"); err == nil {
			fmt.Fprint(p.w, out) //nolint:errcheck
			return
		}
	}
	p.println(text)
}

func (p *printer) section(s view.Section) {
	p.println()
	p.println(headingStyle.Render(s.Title))
	if s.Status != "" {
		p.println(subtleStyle.Render(s.Status))
	}
	for _, line := range s.Lines {
		p.println(line)
	}
	for _, item := range s.Items {
		line := "  • " + item.Title
		if item.Subtitle != "" {
			line += subtleStyle.Render(" — " + item.Subtitle)
		}
		p.println(line)
		for _, link := range item.Links {
			p.println("    " + link.Label + ": " + link.URL)
		}
	}
	if s.Code != "" {
		p.code(s.Code, "")
	}
}

func (p *printer) dashboard(d app.Dashboard) {
	p.section(d.Profile)
	p.section(d.Artists)
	p.section(d.Tracks)
	p.section(d.Taste)
}
