package ui

// Router maps page names to constructors, remembering registration order
// for "next page" navigation.
type Router struct {
	pages map[string]PageFunc
	order []string
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{pages: make(map[string]PageFunc)}
}

// Register adds or replaces a page constructor.
func (r *Router) Register(name string, fn PageFunc) {
	if _, ok := r.pages[name]; !ok {
		r.order = append(r.order, name)
	}
	r.pages[name] = fn
}

// Lookup returns the constructor for name.
func (r *Router) Lookup(name string) (PageFunc, bool) {
	fn, ok := r.pages[name]
	return fn, ok
}

// Names returns page names in registration order.
func (r *Router) Names() []string {
	return append([]string(nil), r.order...)
}

// After returns the page registered after name, wrapping around. Unknown
// names yield the first page.
func (r *Router) After(name string) string {
	if len(r.order) == 0 {
		return ""
	}
	for i, n := range r.order {
		if n == name {
			return r.order[(i+1)%len(r.order)]
		}
	}
	return r.order[0]
}
