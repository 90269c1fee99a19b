package document

// Handler reacts to an event dispatched on a node.
type Handler func(*Event)

// Node is an element of the document tree.
type Node struct {
	Tag string

	id       int
	doc      *Document
	parent   *Node
	children []*Node
	handlers map[EventType][]Handler
	field    *field
}

// ID returns the node's document-unique identifier.
func (n *Node) ID() int {
	return n.id
}

// Parent returns the parent node, or nil for the body and detached roots.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the node's children in order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// AppendChild attaches c as the last child of n, detaching it from any
// previous parent first.
func (n *Node) AppendChild(c *Node) {
	if c == nil || c == n {
		return
	}
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)
}

// RemoveChild detaches c from n. Returns false if c is not a child of n.
func (n *Node) RemoveChild(c *Node) bool {
	for i, child := range n.children {
		if child == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return true
		}
	}
	return false
}

// Remove detaches n from its parent. No-op when already detached.
func (n *Node) Remove() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// Contains reports whether other is n itself or any descendant of n.
func (n *Node) Contains(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// Depth returns the number of ancestors above n.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Attached reports whether n is reachable from its document's body.
func (n *Node) Attached() bool {
	return n.doc != nil && n.doc.body.Contains(n)
}

// AddEventListener registers h for events of type t targeted at n or one of
// its descendants. Node handlers live as long as the node.
func (n *Node) AddEventListener(t EventType, h Handler) {
	if n.handlers == nil {
		n.handlers = make(map[EventType][]Handler)
	}
	n.handlers[t] = append(n.handlers[t], h)
}

// ancestry returns n followed by each of its ancestors.
func (n *Node) ancestry() []*Node {
	var path []*Node
	for p := n; p != nil; p = p.parent {
		path = append(path, p)
	}
	return path
}
