package ui

// Entry is a page in navigation history with the route it was built from.
type Entry struct {
	Route string
	Page  Page
}

// ViewStack is the shell's navigation history (push on navigate, pop on back).
type ViewStack struct {
	Stack []Entry
}

// Push adds an entry to the top of the stack.
func (s *ViewStack) Push(e Entry) {
	s.Stack = append(s.Stack, e)
}

// Pop removes and returns the top entry.
func (s *ViewStack) Pop() (Entry, bool) {
	if len(s.Stack) == 0 {
		return Entry{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top entry without removing it.
func (s *ViewStack) Peek() (Entry, bool) {
	if len(s.Stack) == 0 {
		return Entry{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of entries in the stack.
func (s *ViewStack) Len() int {
	return len(s.Stack)
}
