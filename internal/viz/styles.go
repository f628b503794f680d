package viz

import "github.com/charmbracelet/lipgloss"

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	Label = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	Value = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	Good  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	Bad   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	Err   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	Hint  = lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Italic(true)
	Graph = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)
