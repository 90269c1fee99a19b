package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"selectui/internal/config"
)

// Head is the document metadata emitted with every page.
type Head struct {
	Title    string
	Charset  string
	Viewport string
	Locale   string
	Type     string
}

// NewHead builds the metadata from configuration.
func NewHead(m config.MetaConfig) Head {
	return Head(m)
}

// Meta returns the metadata as key/value pairs using their HTML names.
func (h Head) Meta() map[string]string {
	return map[string]string{
		"charset":   h.Charset,
		"viewport":  h.Viewport,
		"og:locale": h.Locale,
		"og:type":   h.Type,
	}
}

// WindowTitle is the terminal title for a page.
func (h Head) WindowTitle(page string) string {
	switch {
	case page == "":
		return h.Title
	case h.Title == "":
		return page
	}
	return page + " | " + h.Title
}

var headOrder = []string{"charset", "viewport", "og:locale", "og:type"}

// Render draws the title line and the metadata bar. Empty values are skipped.
func (h Head) Render(page string) string {
	meta := h.Meta()
	parts := make([]string, 0, len(headOrder))
	for _, k := range headOrder {
		if v := meta[k]; v != "" {
			parts = append(parts, Styles.MetaKey.Render(k)+"="+v)
		}
	}
	title := Styles.Title.Render(h.WindowTitle(page))
	if len(parts) == 0 {
		return title
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, Styles.Head.Render(strings.Join(parts, "  ")))
}
