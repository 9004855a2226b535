package feed

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	author     lipgloss.Style
	detail     lipgloss.Style
	meta       lipgloss.Style
	badge      lipgloss.Style
	private    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	media      lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		author:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		badge:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		private:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		media:      lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Underline(true),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
