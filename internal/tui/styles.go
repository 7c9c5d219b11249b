package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jpp0ca/MusicSoulmate/internal/view"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorPurple    = lipgloss.Color("#8524a6")
	colorGreen     = lipgloss.Color("#00FF00")
	colorYellow    = lipgloss.Color("#FFFF00")
	colorRed       = lipgloss.Color("#FF0000")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Bold(true)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			PaddingLeft(2)

	rowSelectedStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Bold(true).
				BorderStyle(lipgloss.ThickBorder()).
				BorderLeft(true).
				BorderForeground(colorPurple).
				PaddingLeft(1)

	subtleStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorPurple).
			Padding(0, 1)

	buttonDisabledStyle = lipgloss.NewStyle().
				Foreground(colorGray).
				Background(colorDarkGray).
				Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true).
			MarginTop(1)
)

// color of the status dot for each level
func statusStyle(level view.Level) lipgloss.Style {
	switch level {
	case view.LevelOK:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case view.LevelLoading:
		return lipgloss.NewStyle().Foreground(colorYellow)
	case view.LevelError:
		return lipgloss.NewStyle().Foreground(colorRed)
	default:
		return lipgloss.NewStyle().Foreground(colorGray)
	}
}
