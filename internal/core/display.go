package core

import "github.com/charmbracelet/lipgloss"

// Only headers and markers are styled; record lines stay plain text so the
// output remains grep-friendly.
var (
	sectionStyle = lipgloss.NewStyle().Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)
