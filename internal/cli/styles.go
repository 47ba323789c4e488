// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#5B8DEF")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for district headings.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// CandidateStyle is used for candidate headings inside a district.
	CandidateStyle = lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#333"))

	// AmountStyle highlights dollar figures.
	AmountStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// SelfFundedStyle marks contributions flagged as self-funding.
	SelfFundedStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)
)

// FormatTitle formats a district heading.
func FormatTitle(title string) string {
	return TitleStyle.Render(title)
}

// FormatCandidate formats a candidate heading.
func FormatCandidate(name string) string {
	return CandidateStyle.Render(name)
}

// FormatAmount formats a dollar figure.
func FormatAmount(amount string) string {
	return AmountStyle.Render("$" + amount)
}

// FormatWarning formats a warning message.
func FormatWarning(message string) string {
	return WarningStyle.Render("⚠ " + message)
}

// FormatError formats an error message.
func FormatError(message string) string {
	return ErrorStyle.Render("✗ " + message)
}

// FormatSubtle formats de-emphasized text.
func FormatSubtle(message string) string {
	return SubtleStyle.Render(message)
}
