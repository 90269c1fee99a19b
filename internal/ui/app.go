package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"selectui/internal/config"
	"selectui/internal/document"
	"selectui/internal/logging"
	"selectui/internal/trace"
)

// NavigateMsg pushes the named page onto the history.
type NavigateMsg struct {
	Route string
	Props Props
}

// BackMsg returns to the previous page (SPC b).
type BackMsg struct{}

// NextPageMsg opens the page registered after the current one (SPC n).
type NextPageMsg struct{}

// ToggleHelpMsg shows or hides the keybinding overview (SPC ?).
type ToggleHelpMsg struct{}

// AppModel is the application shell. It owns the document every page mounts
// into, renders the shared frame and metadata, and routes input.
type AppModel struct {
	Document   *document.Document
	Router     *Router
	History    ViewStack
	Head       Head
	KeyHandler *KeyHandler
	Logger     *logging.Logger
	Recorder   *trace.Recorder
	StartPage  string
	ShowHelp   bool
	Width      int
	Height     int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model. The start page is mounted here so its metadata
// goes out with the first frame.
func (a *appModelAdapter) Init() tea.Cmd {
	if a.History.Len() > 0 {
		return nil
	}
	return a.navigate(a.StartPage, nil, "start")
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case NavigateMsg:
		return a, a.navigate(msg.Route, msg.Props, "push")
	case NextPageMsg:
		e, _ := a.History.Peek()
		return a, a.navigate(a.Router.After(e.Route), nil, "push")
	case BackMsg:
		return a, a.back()
	case ToggleHelpMsg:
		a.ShowHelp = !a.ShowHelp
		return a, nil
	case tea.WindowSizeMsg:
		a.Width, a.Height = msg.Width, msg.Height
	case tea.MouseMsg:
		// Zones are from the last rendered frame.
		a.Document.DispatchMouse(msg)
		return a, nil
	case tea.KeyMsg:
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
	}

	e, ok := a.History.Peek()
	if !ok {
		return a, nil
	}
	v, cmd := e.Page.Update(msg)
	if p, ok := v.(Page); ok && p != e.Page {
		a.History.Stack[a.History.Len()-1].Page = p
	}
	return a, cmd
}

// View implements tea.Model. The composed frame is scanned so the document
// can resolve the next mouse event against it.
func (a *appModelAdapter) View() string {
	e, ok := a.History.Peek()
	if !ok {
		return ""
	}
	sections := []string{a.Head.Render(e.Page.Title()), e.Page.View()}
	if pending := RenderKeybindHelp(a.KeyHandler); pending != "" {
		sections = append(sections, pending)
	} else if a.ShowHelp {
		sections = append(sections, RenderHelp(a.KeyHandler))
	}
	frame := Styles.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	return a.Document.Scan(frame)
}

func (m *AppModel) navigate(route string, props Props, direction string) tea.Cmd {
	fn, ok := m.Router.Lookup(route)
	if !ok {
		m.Logger.Logf("navigate: unknown page %q", route)
		return nil
	}
	if cur, ok := m.History.Peek(); ok {
		cur.Page.Unmount()
	}
	m.History.Push(Entry{Route: route, Page: fn(props)})
	return m.activate(direction)
}

func (m *AppModel) back() tea.Cmd {
	if m.History.Len() < 2 {
		return nil
	}
	top, _ := m.History.Pop()
	top.Page.Unmount()
	return m.activate("back")
}

// activate mounts the top page and emits its metadata.
func (m *AppModel) activate(direction string) tea.Cmd {
	e, _ := m.History.Peek()
	e.Page.Mount(m.Document)
	if m.Width > 0 {
		e.Page.Update(tea.WindowSizeMsg{Width: m.Width, Height: m.Height})
	}

	title := m.Head.WindowTitle(e.Page.Title())
	m.Logger.Logf("navigate %s page=%s title=%q charset=%s locale=%s type=%s viewport=%q",
		direction, e.Route, title, m.Head.Charset, m.Head.Locale, m.Head.Type, m.Head.Viewport)
	m.Recorder.Navigate(context.Background(), e.Route, direction, m.Head.Meta())

	return tea.Batch(tea.SetWindowTitle(title), e.Page.Init())
}

// Current returns the active page, or nil before Init.
func (m *AppModel) Current() Page {
	e, ok := m.History.Peek()
	if !ok {
		return nil
	}
	return e.Page
}

// Services are the process-wide collaborators handed to the shell. Any of
// them may be nil.
type Services struct {
	Logger   *logging.Logger
	Recorder *trace.Recorder
	Journal  *trace.Journal
}

// NewAppModel creates the shell with the built-in pages registered.
func NewAppModel(cfg config.Config, svc Services) *AppModel {
	logger, recorder := svc.Logger, svc.Recorder
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC n", func() tea.Msg { return NextPageMsg{} }, "Next page")
	reg.BindWithDesc("SPC b", func() tea.Msg { return BackMsg{} }, "Back")
	reg.BindWithDesc("SPC ?", func() tea.Msg { return ToggleHelpMsg{} }, "Help")

	router := NewRouter()
	router.Register(PageForm, func(Props) Page {
		return NewFormPage(FormPageConfig{
			DropdownWidth: cfg.UI.DropdownWidth,
			OnSelect: func(field, value, label string) {
				logger.Logf("select field=%s value=%q label=%q", field, value, label)
				recorder.Select(context.Background(), field, value, label)
			},
		})
	})
	router.Register(PageTrace, func(Props) Page {
		return NewTracePage(svc.Journal)
	})
	router.Register(PageAbout, func(Props) Page {
		return NewAboutPage(NewHead(cfg.Meta))
	})

	start := cfg.UI.StartPage
	if _, ok := router.Lookup(start); !ok {
		start = PageForm
	}
	return &AppModel{
		Document:   document.NewDocument(),
		Router:     router,
		Head:       NewHead(cfg.Meta),
		KeyHandler: NewKeyHandler(reg),
		Logger:     logger,
		Recorder:   recorder,
		StartPage:  start,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
