package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"selectui/internal/trace"
)

func TestTracePage_Empty(t *testing.T) {
	p := NewTracePage(nil)
	assert.Contains(t, p.View(), "No interactions recorded yet")
}

func TestTracePage_ListsNewestFirst(t *testing.T) {
	j := trace.NewJournal(10)
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(j))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	rec := trace.NewProviderFrom(tp).Recorder()

	rec.Navigate(context.Background(), "form", "start", nil)
	rec.Select(context.Background(), "size", "1", "A")

	p := NewTracePage(j)
	p.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	out := p.View()
	assert.Contains(t, out, "field=size")
	assert.Contains(t, out, "label=A")
	assert.Contains(t, out, "page=form")
	assert.Less(t, strings.Index(out, "select"), strings.Index(out, "navigate"))
}

func TestTracePage_RefreshesOnJournalChangeWhileMounted(t *testing.T) {
	j := trace.NewJournal(10)
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(j))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	rec := trace.NewProviderFrom(tp).Recorder()

	p := NewTracePage(j)
	p.Mount(nil)
	assert.Contains(t, p.View(), "No interactions recorded yet")

	rec.Select(context.Background(), "size", "1", "A")
	assert.Contains(t, p.View(), "label=A")

	p.Unmount()
	rec.Select(context.Background(), "size", "2", "B")
	assert.NotContains(t, p.View(), "label=B", "unmounted page keeps its last content")

	p.Mount(nil)
	assert.Contains(t, p.View(), "label=B")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "<1µs", formatDuration(0))
	assert.Equal(t, "12µs", formatDuration(12*time.Microsecond+300))
	assert.Equal(t, "1.5ms", formatDuration(1500*time.Microsecond))
}
