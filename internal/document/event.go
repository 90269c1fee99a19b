package document

import tea "github.com/charmbracelet/bubbletea"

// EventType identifies the kind of pointer event.
type EventType int

const (
	EventPointerDown EventType = iota // primary button pressed
	EventClick                        // primary button released
	EventTouchEnd                     // touch lifted (hosts with touch input)
)

func (t EventType) String() string {
	switch t {
	case EventPointerDown:
		return "pointerdown"
	case EventClick:
		return "click"
	case EventTouchEnd:
		return "touchend"
	default:
		return "unknown"
	}
}

// Event is a single pointer event travelling through the document.
type Event struct {
	Type   EventType
	Target *Node
	X, Y   int

	stopped bool
}

// StopPropagation prevents the event from reaching ancestors of the current
// node and the document-level listeners. Other handlers on the current node
// still run.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// Stopped reports whether StopPropagation was called.
func (e *Event) Stopped() bool {
	return e.stopped
}

// MouseEventType maps a Bubble Tea mouse message to a pointer event type.
// Only the primary button participates; wheel, motion and other buttons
// report false.
func MouseEventType(msg tea.MouseMsg) (EventType, bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return EventPointerDown, true
		}
	case tea.MouseActionRelease:
		// X10 terminals do not report which button was released.
		if msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone {
			return EventClick, true
		}
	}
	return 0, false
}
