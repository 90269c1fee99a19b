package ui

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"selectui/internal/document"
	"selectui/internal/trace"
)

// PageTrace lists recent interaction spans.
const PageTrace = "trace"

// chrome is the number of frame rows around the trace viewport.
const chrome = 8

// TracePage shows the span journal, newest first, in a scrollable viewport.
// While mounted the journal marks the content stale after each span; the
// viewport is refilled on the next render.
type TracePage struct {
	journal  *trace.Journal
	viewport viewport.Model
	stale    atomic.Bool
}

// Ensure TracePage implements Page
var _ Page = (*TracePage)(nil)

// NewTracePage creates the page. A nil journal shows an empty list.
func NewTracePage(j *trace.Journal) *TracePage {
	vp := viewport.New(72, 12)
	vp.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1)
	p := &TracePage{journal: j, viewport: vp}
	p.stale.Store(true)
	return p
}

// Title implements Page.
func (p *TracePage) Title() string { return "Trace" }

// Mount implements Page. It subscribes to journal changes.
func (p *TracePage) Mount(*document.Document) {
	p.stale.Store(true)
	p.journal.SetOnChange(func() { p.stale.Store(true) })
}

// Unmount implements Page.
func (p *TracePage) Unmount() {
	p.journal.SetOnChange(nil)
}

// Init implements View.
func (p *TracePage) Init() tea.Cmd {
	return p.viewport.Init()
}

// Update implements View.
func (p *TracePage) Update(msg tea.Msg) (View, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		p.viewport.Width = max(ws.Width-4, 20)
		p.viewport.Height = max(ws.Height-chrome, 3)
		return p, nil
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View implements View.
func (p *TracePage) View() string {
	if p.stale.Swap(false) {
		p.viewport.SetContent(p.content())
	}
	return p.viewport.View()
}

func (p *TracePage) content() string {
	spans := p.journal.Recent()
	if len(spans) == 0 {
		return Styles.Hint.Render("No interactions recorded yet")
	}
	lines := make([]string, len(spans))
	for i, s := range spans {
		lines[i] = renderSpan(s)
	}
	return strings.Join(lines, "\n")
}

// spanKeys are the attributes shown for a span, in display order.
var spanKeys = []struct{ attr, label string }{
	{string(trace.AttrDirection), "nav"},
	{string(trace.AttrPage), "page"},
	{string(trace.AttrField), "field"},
	{string(trace.AttrValue), "value"},
	{string(trace.AttrLabel), "label"},
}

func renderSpan(s trace.Span) string {
	parts := []string{
		Styles.Hint.Render(s.StartTime.Format("15:04:05")),
		Styles.Title.Render(fmt.Sprintf("%-8s", s.Name)),
	}
	for _, k := range spanKeys {
		if v, ok := s.Attributes[k.attr]; ok {
			parts = append(parts, Styles.MetaKey.Render(k.label)+"="+v)
		}
	}
	parts = append(parts, Styles.Hint.Render(formatDuration(s.Duration)))
	return strings.Join(parts, " ")
}

// formatDuration formats a span duration at microsecond precision.
func formatDuration(d time.Duration) string {
	if d < time.Microsecond {
		return "<1µs"
	}
	return d.Round(time.Microsecond).String()
}
