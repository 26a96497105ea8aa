package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: project names, paths, commands.
	ColorCyan = lipgloss.Color("14")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorYellow is used for reminders that need follow-up.
	ColorYellow = lipgloss.Color("220")

	// ColorDimGray is used for structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (tree descriptions, hints).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleReminder styles follow-up reminders.
	StyleReminder = lipgloss.NewStyle().Foreground(ColorYellow)
)

// Styles bundles the styles used by renderers.
type Styles struct {
	Bold  lipgloss.Style
	Muted lipgloss.Style
	Noun  lipgloss.Style
}

// GetStyles returns the renderer styles.
func GetStyles() *Styles {
	return &Styles{
		Bold:  StyleSummary,
		Muted: StyleDim,
		Noun:  StyleNoun,
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCommand renders a shell command the user is expected to run.
func FormatCommand(cmd string) string {
	return StyleNoun.Render(cmd)
}
