package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Help text styles
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	versionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#9D7BF5"))
	flagStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	serviceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E"))
)
