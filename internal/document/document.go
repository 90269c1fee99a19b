package document

import tea "github.com/charmbracelet/bubbletea"

// ListenerID identifies a document-level listener for later removal.
type ListenerID uint64

// Listener is a document-level event callback.
type Listener func(*Event)

type listener struct {
	id      ListenerID
	fn      Listener
	removed bool
}

// Document owns the element tree, the document-level listener registry and
// the zone table of the last scanned frame.
type Document struct {
	body         *Node
	nextNodeID   int
	nextListener ListenerID
	listeners    map[EventType][]*listener

	marks map[int]*Node // nodes marked since the last Scan
	zones []zone
}

// NewDocument creates an empty document with a body element.
func NewDocument() *Document {
	d := &Document{
		listeners: make(map[EventType][]*listener),
		marks:     make(map[int]*Node),
	}
	d.body = d.CreateElement("body")
	return d
}

// Body returns the root element.
func (d *Document) Body() *Node {
	return d.body
}

// CreateElement returns a new detached node owned by d.
func (d *Document) CreateElement(tag string) *Node {
	d.nextNodeID++
	return &Node{Tag: tag, id: d.nextNodeID, doc: d}
}

// AddEventListener registers fn for every event of type t dispatched in the
// document. The returned ID must be passed to RemoveEventListener to release
// the registration.
func (d *Document) AddEventListener(t EventType, fn Listener) ListenerID {
	d.nextListener++
	id := d.nextListener
	d.listeners[t] = append(d.listeners[t], &listener{id: id, fn: fn})
	return id
}

// RemoveEventListener releases a registration. Returns false if id is not
// registered for t. A listener removed while an event is being dispatched is
// not called for the remainder of that dispatch.
func (d *Document) RemoveEventListener(t EventType, id ListenerID) bool {
	ls := d.listeners[t]
	for i, l := range ls {
		if l.id == id {
			l.removed = true
			d.listeners[t] = append(ls[:i:i], ls[i+1:]...)
			return true
		}
	}
	return false
}

// ListenerCount returns the number of live document-level listeners for t.
func (d *Document) ListenerCount(t EventType) int {
	return len(d.listeners[t])
}

// Dispatch delivers ev synchronously. The propagation path is fixed before
// any handler runs, so a handler that detaches nodes does not shorten it.
// A nil target is treated as the body.
func (d *Document) Dispatch(ev *Event) {
	if ev.Target == nil {
		ev.Target = d.body
	}
	for _, n := range ev.Target.ancestry() {
		hs := n.handlers[ev.Type]
		if len(hs) > 0 {
			hs = append([]Handler(nil), hs...)
		}
		for _, h := range hs {
			h(ev)
		}
		if ev.stopped {
			return
		}
	}

	snapshot := append([]*listener(nil), d.listeners[ev.Type]...)
	for _, l := range snapshot {
		if l.removed {
			continue
		}
		l.fn(ev)
	}
}

// DispatchAt resolves the node under (x, y) and dispatches an event of type t
// targeted at it.
func (d *Document) DispatchAt(t EventType, x, y int) *Event {
	ev := &Event{Type: t, Target: d.ElementAt(x, y), X: x, Y: y}
	d.Dispatch(ev)
	return ev
}

// DispatchMouse translates a Bubble Tea mouse message into a pointer event
// and dispatches it. Returns false for messages that carry no pointer event.
func (d *Document) DispatchMouse(msg tea.MouseMsg) bool {
	t, ok := MouseEventType(msg)
	if !ok {
		return false
	}
	d.DispatchAt(t, msg.X, msg.Y)
	return true
}
