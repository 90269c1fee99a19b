package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"selectui/internal/document"
)

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Props are the properties a page is constructed with. The shell passes them
// through untouched.
type Props map[string]any

// Page is a full-screen View hosted by the shell. Mount is called when the
// page becomes active and Unmount when it is replaced; pages attach their
// widgets to the document in between.
type Page interface {
	View
	Title() string
	Mount(doc *document.Document)
	Unmount()
}

// PageFunc builds a page from its properties.
type PageFunc func(Props) Page
