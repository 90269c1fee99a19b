package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"selectui/internal/document"
)

// AboutPage describes the application and lists the document metadata.
type AboutPage struct {
	head Head
}

// NewAboutPage creates the page for head.
func NewAboutPage(head Head) *AboutPage {
	return &AboutPage{head: head}
}

// Title implements Page.
func (p *AboutPage) Title() string { return "About" }

// Mount implements Page. The page has no interactive nodes.
func (p *AboutPage) Mount(*document.Document) {}

// Unmount implements Page.
func (p *AboutPage) Unmount() {}

// Init implements View.
func (p *AboutPage) Init() tea.Cmd { return nil }

// Update implements View.
func (p *AboutPage) Update(tea.Msg) (View, tea.Cmd) { return p, nil }

// View implements View.
func (p *AboutPage) View() string {
	var b strings.Builder
	b.WriteString(Styles.Normal.Render("A dropdown select demo for the terminal."))
	b.WriteString("\n\n")
	meta := p.head.Meta()
	for _, k := range headOrder {
		b.WriteString(Styles.MetaKey.Render(k) + "  " + Styles.Normal.Render(meta[k]) + "\n")
	}
	b.WriteString("\n" + Styles.Hint.Render("SPC n next page · SPC b back · q quit"))
	return b.String()
}
