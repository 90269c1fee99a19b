package ui

// FocusManager tracks and rotates focus across form fields.
type FocusManager struct {
	Current  string   // ID of the focused field
	Order    []string // tab order
	OnChange func(from, to string)
}

// Next moves focus forward, wrapping at the end. Returns the new focus ID.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus backward, wrapping at the start.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

// SetFocus focuses id. Returns false if id is not in Order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.index(id) < 0 {
		return false
	}
	f.set(id)
	return true
}

func (f *FocusManager) step(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	i := f.index(f.Current)
	if i < 0 && delta < 0 {
		i = 0 // unfocused Prev lands on the last entry
	}
	f.set(f.Order[((i+delta)%n+n)%n])
	return f.Current
}

func (f *FocusManager) index(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
