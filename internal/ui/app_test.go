package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"selectui/internal/config"
	"selectui/internal/document"
	"selectui/internal/trace"
)

func newTestApp(t *testing.T) (*appModelAdapter, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	m := NewAppModel(config.Default(), Services{Recorder: trace.NewProviderFrom(tp).Recorder()})
	a := m.AsTeaModel().(*appModelAdapter)
	require.NotNil(t, a.Init())
	return a, sr
}

func spanAttr(s sdktrace.ReadOnlySpan, key string) string {
	for _, kv := range s.Attributes() {
		if kv.Key == attribute.Key(key) {
			return kv.Value.Emit()
		}
	}
	return ""
}

func formPage(t *testing.T, a *appModelAdapter) *FormPage {
	t.Helper()
	p, ok := a.Current().(*FormPage)
	require.True(t, ok, "current page is %T", a.Current())
	return p
}

func TestApp_InitMountsStartPageAndEmitsMetadata(t *testing.T) {
	a, sr := newTestApp(t)

	p := formPage(t, a)
	assert.True(t, p.Fields[0].Dropdown.Mounted())
	assert.Equal(t, 3, a.Document.ListenerCount(document.EventClick))

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "navigate", spans[0].Name())
	assert.Equal(t, "form", spanAttr(spans[0], "selectui.page"))
	assert.Equal(t, "start", spanAttr(spans[0], "selectui.navigation"))
	assert.Equal(t, "ja_JP", spanAttr(spans[0], "selectui.meta.og:locale"))

	assert.Nil(t, a.Init(), "a second Init does not navigate again")
	assert.Len(t, sr.Ended(), 1)
}

func TestApp_ViewHasFrameHeadAndNoMarkers(t *testing.T) {
	a, _ := newTestApp(t)

	out := a.View()
	assert.Contains(t, out, "Form | selectui")
	assert.Contains(t, out, "og:locale=ja_JP")
	assert.Contains(t, out, "color=x&empty=&size=2")
	assert.NotContains(t, out, "\x1b[<")
	assert.NotContains(t, out, "\x1b[>")
}

func TestApp_NavigationUnmountsAndRemounts(t *testing.T) {
	a, sr := newTestApp(t)
	form := formPage(t, a)

	a.Update(NavigateMsg{Route: PageAbout})
	_, isAbout := a.Current().(*AboutPage)
	require.True(t, isAbout)
	assert.False(t, form.Fields[0].Dropdown.Mounted())
	assert.Zero(t, a.Document.ListenerCount(document.EventClick))
	assert.Equal(t, 2, a.History.Len())

	a.Update(BackMsg{})
	assert.Same(t, form, a.Current())
	assert.True(t, form.Fields[0].Dropdown.Mounted())
	assert.Equal(t, 3, a.Document.ListenerCount(document.EventClick))

	_, cmd := a.Update(BackMsg{})
	assert.Nil(t, cmd, "nothing to go back to")
	assert.Same(t, form, a.Current())

	spans := sr.Ended()
	require.Len(t, spans, 3)
	assert.Equal(t, "push", spanAttr(spans[1], "selectui.navigation"))
	assert.Equal(t, "about", spanAttr(spans[1], "selectui.page"))
	assert.Equal(t, "back", spanAttr(spans[2], "selectui.navigation"))
}

func TestApp_UnknownRouteIsIgnored(t *testing.T) {
	a, _ := newTestApp(t)

	_, cmd := a.Update(NavigateMsg{Route: "missing"})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, a.History.Len())
}

func TestApp_LeaderKeysNavigate(t *testing.T) {
	a, _ := newTestApp(t)

	_, cmd := a.Update(keyMsg(" "))
	assert.Nil(t, cmd)
	assert.Contains(t, a.View(), "Next page")

	_, cmd = a.Update(keyMsg("n"))
	require.NotNil(t, cmd)
	a.Update(cmd())
	_, isTrace := a.Current().(*TracePage)
	assert.True(t, isTrace, "trace is registered after form")

	a.Update(keyMsg(" "))
	_, cmd = a.Update(keyMsg("?"))
	require.NotNil(t, cmd)
	a.Update(cmd())
	assert.True(t, a.ShowHelp)
	assert.Contains(t, a.View(), "SPC b")
}

func TestApp_QuitKey(t *testing.T) {
	a, _ := newTestApp(t)

	_, cmd := a.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_UnboundKeysReachThePage(t *testing.T) {
	a, _ := newTestApp(t)
	p := formPage(t, a)

	a.Update(keyMsg("tab"))
	assert.Equal(t, "color", p.Focus.Current)
}

func mouse(x, y int, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestApp_MouseSelectsOption(t *testing.T) {
	a, sr := newTestApp(t)
	size := formPage(t, a).Fields[0].Dropdown

	a.View()
	r, ok := a.Document.Bounds(size.ControlNode())
	require.True(t, ok)
	a.Update(mouse(r.X0, r.Y0, tea.MouseActionPress))
	a.Update(mouse(r.X0, r.Y0, tea.MouseActionRelease))
	require.True(t, size.IsOpen())

	a.View()
	r, ok = a.Document.Bounds(size.OptionNode(0))
	require.True(t, ok)
	a.Update(mouse(r.X0+1, r.Y0, tea.MouseActionPress))
	assert.False(t, size.IsOpen())
	assert.Equal(t, 0, size.SelectedIndex())

	out := a.View()
	assert.Contains(t, out, "size=1")
	assert.Contains(t, out, "size = A")

	last := sr.Ended()[len(sr.Ended())-1]
	assert.Equal(t, "select", last.Name())
	assert.Equal(t, "A", spanAttr(last, "selectui.option.label"))
}

func TestApp_MouseOutsideCloses(t *testing.T) {
	a, _ := newTestApp(t)
	size := formPage(t, a).Fields[0].Dropdown

	a.View()
	r, _ := a.Document.Bounds(size.ControlNode())
	a.Update(mouse(r.X0, r.Y0, tea.MouseActionPress))
	require.True(t, size.IsOpen())

	frame := a.View()
	bottom := len(strings.Split(frame, "\n")) - 1
	a.Update(mouse(0, bottom, tea.MouseActionPress))
	assert.True(t, size.IsOpen(), "pressing outside does not close")
	a.Update(mouse(0, bottom, tea.MouseActionRelease))
	assert.False(t, size.IsOpen())
	assert.Equal(t, 1, size.SelectedIndex())
}
