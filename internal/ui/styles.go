package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("39")
	ColorMuted   = lipgloss.Color("245")
	ColorError   = lipgloss.Color("196")
	ColorAccent  = lipgloss.Color("212")
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	NavStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	CursorStyle = lipgloss.NewStyle().
			Reverse(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(ColorError).
			PaddingLeft(1)

	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Padding(0, 1)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)
)
