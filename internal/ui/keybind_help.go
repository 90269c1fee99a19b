package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient bar shown while a leader sequence
// is pending. Returns "" when nothing is pending.
func RenderKeybindHelp(h *KeyHandler) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	seq := h.Sequence()
	bindings := h.Registry.Bindings(seq)

	hm := help.New()
	hm.Styles.ShortKey = Styles.HelpKey
	hm.Styles.ShortDesc = Styles.Hint
	hm.Styles.ShortSeparator = Styles.Hint

	label := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)).Render(seq)
	return Styles.HelpBox.Render(label + " " + hm.ShortHelpView(bindings))
}

// RenderHelp lists the leader bindings together with the single-key ones.
func RenderHelp(h *KeyHandler) string {
	if h == nil {
		return ""
	}
	hm := help.New()
	hm.Styles.ShortKey = Styles.HelpKey
	hm.Styles.ShortDesc = Styles.Hint
	hm.Styles.ShortSeparator = Styles.Hint

	leader := h.Registry.Bindings("SPC")
	leader = leader[:len(leader)-1] // drop esc
	for i, b := range leader {
		leader[i] = key.NewBinding(key.WithKeys(b.Keys()...), key.WithHelp("SPC "+b.Help().Key, b.Help().Desc))
	}
	quit := key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit"))
	return Styles.HelpBox.Render(hm.ShortHelpView(append(leader, quit)))
}
