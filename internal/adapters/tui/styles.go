package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	group    lipgloss.Style
	book     lipgloss.Style
	cursor   lipgloss.Style
	chapter  lipgloss.Style
	active   lipgloss.Style
	notice   lipgloss.Style
	help     lipgloss.Style
	pane     lipgloss.Style
	paneHead lipgloss.Style
	failed   lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cba6f7")).PaddingLeft(1),
		group:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa")),
		book:     lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")),
		cursor:   lipgloss.NewStyle().Reverse(true),
		chapter:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		active:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a6e3a1")),
		notice:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#f9e2af")),
		help:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")).PaddingLeft(1),
		pane:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#313244")).Padding(0, 1),
		paneHead: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa")),
		failed:   lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")),
	}
}
