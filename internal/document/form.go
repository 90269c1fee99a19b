package document

import "net/url"

// field is a hidden form value attached to a node. The value is read on
// demand so it always mirrors its owner's current state.
type field struct {
	name  string
	value func() string
}

// SetField attaches a named hidden value to n, replacing any previous one.
// An empty name removes it.
func (n *Node) SetField(name string, value func() string) {
	if name == "" || value == nil {
		n.field = nil
		return
	}
	n.field = &field{name: name, value: value}
}

// FieldName returns the name of the hidden value attached to n, if any.
func (n *Node) FieldName() string {
	if n.field == nil {
		return ""
	}
	return n.field.name
}

// CollectForm walks root's subtree in document order and gathers every
// hidden value. Repeated names keep every value, in order.
func CollectForm(root *Node) url.Values {
	vals := url.Values{}
	var walk func(*Node)
	walk = func(n *Node) {
		if n.field != nil {
			vals.Add(n.field.name, n.field.value())
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	return vals
}
