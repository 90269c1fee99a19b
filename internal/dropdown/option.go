package dropdown

// Option is one selectable entry.
type Option struct {
	Value Value
	// Label is the display text. Empty means "use the stringified Value".
	Label string
}

// Text returns the label, or the stringified value when no label is set.
func (o Option) Text() string {
	if o.Label != "" {
		return o.Label
	}
	return o.Value.String()
}

// IndexOf returns the index of the first option whose value strictly equals
// v, or -1. An undefined v matches nothing.
func IndexOf(options []Option, v Value) int {
	if !v.Defined() {
		return -1
	}
	for i, o := range options {
		if o.Value.Equal(v) {
			return i
		}
	}
	return -1
}
