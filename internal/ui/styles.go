package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the shell.
const (
	ColorAccent    = "86"  // titles, metadata keys
	ColorHighlight = "205" // focus marker, key hints
	ColorMuted     = "241" // hints, metadata values
	ColorText      = "252" // normal text
)

// Styles is the global style sheet. Every page renders inside Styles.Frame;
// pages may use the rest but never redefine them.
var Styles = struct {
	Frame   lipgloss.Style // page frame applied by the shell
	Head    lipgloss.Style // metadata bar under the title
	Title   lipgloss.Style
	MetaKey lipgloss.Style
	Label   lipgloss.Style // form field labels
	Focused lipgloss.Style // label of the focused field
	Normal  lipgloss.Style
	Hint    lipgloss.Style
	HelpKey lipgloss.Style
	HelpBox lipgloss.Style
}{
	Frame: lipgloss.NewStyle().
		Padding(0, 1),
	Head: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		MarginBottom(1),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	MetaKey: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Focused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	HelpKey: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	HelpBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		MarginTop(1),
}
