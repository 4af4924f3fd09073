// Package theme holds the lipgloss styles used for terminal output.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#C2410C") // Terracotta
	Secondary = lipgloss.Color("#0E7490") // Deep Cyan
	Accent    = lipgloss.Color("#CA8A04") // Mustard
	Success   = lipgloss.Color("#16A34A") // Green
	Error     = lipgloss.Color("#DC2626") // Red
	Text      = lipgloss.Color("#E5E7EB") // Light Gray
	TextDim   = lipgloss.Color("#9CA3AF") // Gray
	Border    = lipgloss.Color("#4B5563") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// Answer feedback
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)

// Question status badges
var (
	StatusNew      = lipgloss.NewStyle().Foreground(TextDim)
	StatusDue      = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	StatusWeak     = lipgloss.NewStyle().Foreground(Error)
	StatusLearning = lipgloss.NewStyle().Foreground(Secondary)
	StatusMastered = lipgloss.NewStyle().Foreground(Success)
)

// Progress bar
var (
	ProgressFilled = lipgloss.NewStyle().
			Foreground(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Foreground(Border)
)
