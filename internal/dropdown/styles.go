package dropdown

import "github.com/charmbracelet/lipgloss"

const (
	colorBorder      = "241"
	colorDanger      = "196"
	colorPlaceholder = "243"
	colorText        = "252"
	colorHighlight   = "205"
)

// Styles holds the visual rules for the widget. They react to HasError and
// the open flag only; nothing here feeds back into state.
type Styles struct {
	Control      lipgloss.Style
	ControlError lipgloss.Style
	Value        lipgloss.Style
	Placeholder  lipgloss.Style
	Arrow        lipgloss.Style
	Menu         lipgloss.Style
	Option       lipgloss.Style
	Highlighted  lipgloss.Style
}

// DefaultStyles returns the stock look.
func DefaultStyles() Styles {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorBorder)).
		Padding(0, 1)
	return Styles{
		Control:      box,
		ControlError: box.BorderForeground(lipgloss.Color(colorDanger)),
		Value:        lipgloss.NewStyle().Foreground(lipgloss.Color(colorText)),
		Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorPlaceholder)),
		Arrow:        lipgloss.NewStyle().Foreground(lipgloss.Color(colorText)),
		Menu:         box,
		Option:       lipgloss.NewStyle().Foreground(lipgloss.Color(colorText)),
		Highlighted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorHighlight)).
			Bold(true),
	}
}

func arrow(open bool) string {
	if open {
		return "▴"
	}
	return "▾"
}
