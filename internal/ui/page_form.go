package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"selectui/internal/document"
	"selectui/internal/dropdown"
)

// Built-in page routes.
const (
	PageForm  = "form"
	PageAbout = "about"
)

// FormPageConfig configures the demo form.
type FormPageConfig struct {
	DropdownWidth int
	// OnSelect is called after any field changes.
	OnSelect func(field, value, label string)
}

// FormField is a labelled dropdown on the form page.
type FormField struct {
	Label    string
	Dropdown *dropdown.Model
}

// FormPage shows three dropdowns and the form values their hidden fields
// submit. It is driven by the mouse, or by the keyboard through synthesised
// pointer events.
type FormPage struct {
	Fields     []FormField
	Focus      FocusManager
	LastChange string

	onSelect func(field, value, label string)
	doc      *document.Document
	root     *document.Node
}

// NewFormPage creates the form with its fields unmounted.
func NewFormPage(cfg FormPageConfig) *FormPage {
	p := &FormPage{onSelect: cfg.OnSelect}
	add := func(label string, props dropdown.Props) {
		props.Width = cfg.DropdownWidth
		name := props.Name
		props.OnChange = func(o dropdown.Option) { p.changed(name, o) }
		p.Fields = append(p.Fields, FormField{Label: label, Dropdown: dropdown.New(props)})
		p.Focus.Order = append(p.Focus.Order, name)
	}
	add("Size", dropdown.Props{
		Name:    "size",
		Options: []dropdown.Option{{Value: dropdown.Int(1), Label: "A"}, {Value: dropdown.Int(2), Label: "B"}},
		Value:   dropdown.Int(2),
	})
	add("Color", dropdown.Props{
		Name:    "color",
		Options: []dropdown.Option{{Value: dropdown.String("x")}},
		Value:   dropdown.String("x"),
	})
	add("Empty", dropdown.Props{
		Name:        "empty",
		Placeholder: "Pick one",
		HasError:    true,
	})
	p.Focus.OnChange = p.focusChanged
	p.Focus.SetFocus(p.Focus.Order[0])
	return p
}

// focusChanged closes the field losing focus with a release on the field
// gaining it, which is outside the former and inside the latter.
func (p *FormPage) focusChanged(from, to string) {
	prev, next := p.field(from), p.field(to)
	if p.doc == nil || prev == nil || next == nil || !prev.IsOpen() {
		return
	}
	p.doc.Dispatch(&document.Event{Type: document.EventClick, Target: next.ControlNode()})
}

func (p *FormPage) field(name string) *dropdown.Model {
	for _, f := range p.Fields {
		if f.Dropdown.Name() == name {
			return f.Dropdown
		}
	}
	return nil
}

func (p *FormPage) changed(name string, o dropdown.Option) {
	p.LastChange = name + " = " + o.Text()
	if p.onSelect != nil {
		p.onSelect(name, o.Value.String(), o.Label)
	}
}

// Title implements Page.
func (p *FormPage) Title() string { return "Form" }

// Mount attaches every field under a form node in doc.
func (p *FormPage) Mount(doc *document.Document) {
	if p.doc != nil {
		return
	}
	p.doc = doc
	p.root = doc.CreateElement("form")
	doc.Body().AppendChild(p.root)
	for _, f := range p.Fields {
		f.Dropdown.Mount(doc, p.root)
	}
}

// Unmount detaches the fields. Their state is kept for the next Mount.
func (p *FormPage) Unmount() {
	if p.doc == nil {
		return
	}
	for _, f := range p.Fields {
		f.Dropdown.Unmount()
	}
	p.root.Remove()
	p.doc, p.root = nil, nil
}

// Focused returns the field with keyboard focus.
func (p *FormPage) Focused() *dropdown.Model {
	return p.field(p.Focus.Current)
}

// Values returns the encoded form values, e.g. "color=x&empty=&size=2".
func (p *FormPage) Values() string {
	if p.root == nil {
		return ""
	}
	return document.CollectForm(p.root).Encode()
}

// Init implements View.
func (p *FormPage) Init() tea.Cmd { return nil }

// Update implements View.
func (p *FormPage) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || p.doc == nil {
		return p, nil
	}
	d := p.Focused()
	switch km.String() {
	case "tab":
		p.Focus.Next()
	case "shift+tab":
		p.Focus.Prev()
	case "enter":
		if d == nil {
			break
		}
		target := d.ControlNode()
		if d.IsOpen() && len(d.Options()) > 0 {
			target = d.OptionNode(d.Highlight())
		}
		p.press(target)
	case "up", "k":
		if d != nil && d.IsOpen() {
			d.MoveHighlight(-1)
		}
	case "down", "j":
		if d != nil && d.IsOpen() {
			d.MoveHighlight(1)
		}
	case "esc":
		p.doc.Dispatch(&document.Event{Type: document.EventClick, Target: p.doc.Body()})
	}
	return p, nil
}

// press synthesises a primary-button press and release on target. The
// release lands on the body when the press detached target.
func (p *FormPage) press(target *document.Node) {
	if target == nil {
		return
	}
	p.doc.Dispatch(&document.Event{Type: document.EventPointerDown, Target: target})
	if !target.Attached() {
		target = nil
	}
	p.doc.Dispatch(&document.Event{Type: document.EventClick, Target: target})
}

// View implements View.
func (p *FormPage) View() string {
	rows := make([]string, 0, len(p.Fields)+2)
	for _, f := range p.Fields {
		label := Styles.Label.Render("  " + f.Label)
		if f.Dropdown.Name() == p.Focus.Current {
			label = Styles.Focused.Render("› " + f.Label)
		}
		rows = append(rows, lipgloss.JoinVertical(lipgloss.Left, label, f.Dropdown.View()))
	}

	var status strings.Builder
	status.WriteString(Styles.MetaKey.Render("form") + " " + p.Values())
	if p.LastChange != "" {
		status.WriteString("\n" + Styles.MetaKey.Render("last") + " " + p.LastChange)
	}
	rows = append(rows, status.String(),
		Styles.Hint.Render("tab focus · enter open/pick · ↑/↓ move · esc close · SPC ? help"))
	return strings.Join(rows, "\n\n")
}
