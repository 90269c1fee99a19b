// Package dropdown implements a select widget: a control showing the current
// selection (or a placeholder) that expands into a list of options.
//
// The widget is driven by pointer events dispatched through a
// document.Document. While mounted it holds one click and one touchend
// listener on the document and closes itself when either lands outside its
// own subtree.
package dropdown

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"selectui/internal/document"
	"selectui/internal/ui/textutil"
)

// DefaultWidth is the text width of the control when Props.Width is unset.
const DefaultWidth = 24

// Props configures a widget at construction.
type Props struct {
	Options []Option
	// Value selects the first option with a strictly equal value. Unset or
	// unmatched means no initial selection.
	Value Value
	// Name labels the hidden form field mirroring the selection.
	Name        string
	Placeholder string
	HasError    bool
	// OnChange runs after the user picks an option, once per pick.
	OnChange func(Option)
	Width    int
	Styles   *Styles
}

type registration struct {
	typ document.EventType
	id  document.ListenerID
}

// Model is a dropdown widget instance.
type Model struct {
	props     Props
	styles    Styles
	width     int
	open      bool
	selected  int // index into props.Options, -1 for none
	highlight int

	doc         *document.Document
	root        *document.Node
	control     *document.Node
	menu        *document.Node
	optionNodes []*document.Node
	listeners   []registration
}

// New creates a closed widget with its initial selection resolved.
func New(props Props) *Model {
	m := &Model{
		props:    props,
		styles:   DefaultStyles(),
		width:    props.Width,
		selected: IndexOf(props.Options, props.Value),
	}
	if props.Styles != nil {
		m.styles = *props.Styles
	}
	if m.width <= 0 {
		m.width = DefaultWidth
	}
	return m
}

// Mount attaches the widget's subtree under parent and registers its
// document listeners. Mounting an already mounted widget is a no-op.
func (m *Model) Mount(doc *document.Document, parent *document.Node) {
	if m.doc != nil {
		return
	}
	m.doc = doc
	m.root = doc.CreateElement("dropdown")
	m.control = doc.CreateElement("dropdown-control")
	m.control.AddEventListener(document.EventPointerDown, m.handleControl)
	m.control.AddEventListener(document.EventTouchEnd, m.handleControl)
	m.root.AppendChild(m.control)
	if m.props.Name != "" {
		m.root.SetField(m.props.Name, m.HiddenValue)
	}
	if m.open {
		m.buildMenu()
	}
	if parent == nil {
		parent = doc.Body()
	}
	parent.AppendChild(m.root)

	m.listeners = []registration{
		{document.EventClick, doc.AddEventListener(document.EventClick, m.handleDocument)},
		{document.EventTouchEnd, doc.AddEventListener(document.EventTouchEnd, m.handleDocument)},
	}
}

// Unmount removes the document listeners and detaches the subtree. After it
// returns no document event reaches this instance. Idempotent.
func (m *Model) Unmount() {
	if m.doc == nil {
		return
	}
	for _, r := range m.listeners {
		m.doc.RemoveEventListener(r.typ, r.id)
	}
	m.listeners = nil
	m.root.Remove()
	m.doc = nil
	m.root, m.control, m.menu = nil, nil, nil
	m.optionNodes = nil
}

// Mounted reports whether the widget is attached to a document.
func (m *Model) Mounted() bool {
	return m.doc != nil
}

// IsOpen reports whether the option list is expanded.
func (m *Model) IsOpen() bool {
	return m.open
}

// Options returns the configured options.
func (m *Model) Options() []Option {
	return m.props.Options
}

// Selected returns the current selection.
func (m *Model) Selected() (Option, bool) {
	if m.selected < 0 {
		return Option{}, false
	}
	return m.props.Options[m.selected], true
}

// SelectedIndex returns the index of the selection, or -1.
func (m *Model) SelectedIndex() int {
	return m.selected
}

// Name returns the hidden field name.
func (m *Model) Name() string {
	return m.props.Name
}

// HiddenValue mirrors the selection's value as submitted with a form; empty
// when nothing is selected.
func (m *Model) HiddenValue() string {
	if o, ok := m.Selected(); ok {
		return o.Value.String()
	}
	return ""
}

// Root returns the widget's root node, nil when unmounted.
func (m *Model) Root() *document.Node { return m.root }

// ControlNode returns the always-visible control node, nil when unmounted.
func (m *Model) ControlNode() *document.Node { return m.control }

// OptionNode returns the node rendering option i while open, otherwise nil.
func (m *Model) OptionNode(i int) *document.Node {
	if i < 0 || i >= len(m.optionNodes) {
		return nil
	}
	return m.optionNodes[i]
}

// Highlight returns the index of the highlighted option.
func (m *Model) Highlight() int {
	return m.highlight
}

// MoveHighlight shifts the highlight by delta, clamped to the option range.
// It is purely visual.
func (m *Model) MoveHighlight(delta int) {
	n := len(m.props.Options)
	if n == 0 {
		m.highlight = 0
		return
	}
	m.highlight = max(0, min(n-1, m.highlight+delta))
}

func (m *Model) handleControl(ev *document.Event) {
	m.setOpen(!m.open)
	ev.StopPropagation()
}

func (m *Model) handleDocument(ev *document.Event) {
	if m.root != nil && m.root.Contains(ev.Target) {
		return
	}
	m.setOpen(false)
}

// pick selects option i, closes the list and notifies OnChange. A panic in
// OnChange propagates to the caller after the state change has happened.
// Option nodes outlive a closed list, so events reaching them while closed
// are ignored.
func (m *Model) pick(i int) {
	if !m.open {
		return
	}
	m.selected = i
	m.setOpen(false)
	if m.props.OnChange != nil {
		m.props.OnChange(m.props.Options[i])
	}
}

func (m *Model) setOpen(open bool) {
	if open == m.open {
		return
	}
	m.open = open
	if open {
		m.highlight = max(m.selected, 0)
		m.buildMenu()
		return
	}
	if m.menu != nil {
		m.menu.Remove()
	}
	m.menu = nil
	m.optionNodes = nil
}

func (m *Model) buildMenu() {
	if m.doc == nil {
		return
	}
	m.menu = m.doc.CreateElement("dropdown-menu")
	m.optionNodes = make([]*document.Node, len(m.props.Options))
	for i := range m.props.Options {
		n := m.doc.CreateElement("dropdown-option")
		idx := i
		n.AddEventListener(document.EventPointerDown, func(*document.Event) { m.pick(idx) })
		n.AddEventListener(document.EventClick, func(*document.Event) { m.pick(idx) })
		m.menu.AppendChild(n)
		m.optionNodes[i] = n
	}
	m.root.AppendChild(m.menu)
}

// View renders the control and, when open, the option list. Output is
// wrapped in zone markers for the owning document; the host must pass the
// final frame through Document.Scan.
func (m *Model) View() string {
	control := m.mark(m.control, m.renderControl())
	if !m.open {
		return m.mark(m.root, control)
	}
	return m.mark(m.root, lipgloss.JoinVertical(lipgloss.Left, control, m.renderMenu()))
}

func (m *Model) renderControl() string {
	var text string
	if o, ok := m.Selected(); ok {
		text = m.styles.Value.Render(renderItem(o, m.width))
	} else {
		text = m.styles.Placeholder.Render(textutil.Fit(m.props.Placeholder, m.width))
	}
	style := m.styles.Control
	if m.props.HasError {
		style = m.styles.ControlError
	}
	return style.Render(text + " " + m.styles.Arrow.Render(arrow(m.open)))
}

func (m *Model) renderMenu() string {
	rows := make([]string, len(m.props.Options))
	for i, o := range m.props.Options {
		style := m.styles.Option
		if i == m.highlight {
			style = m.styles.Highlighted
		}
		rows[i] = m.mark(m.OptionNode(i), style.Render(renderItem(o, m.width+2)))
	}
	body := strings.Join(rows, "\n")
	if len(rows) == 0 {
		body = strings.Repeat(" ", m.width+2)
	}
	return m.mark(m.menu, m.styles.Menu.Render(body))
}

func (m *Model) mark(n *document.Node, s string) string {
	if m.doc == nil || n == nil {
		return s
	}
	return m.doc.Mark(n, s)
}

// renderItem lays out one option's content on a single fixed-width line.
func renderItem(o Option, width int) string {
	return textutil.Fit(o.Text(), width)
}
