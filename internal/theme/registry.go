package theme

import "sync"

// Registry is an insertion-ordered set of named themes. It is shared by
// reference: a Manager initialized with a Registry sees later changes made
// through it.
type Registry struct {
	mu     sync.RWMutex
	order  []string
	themes map[string]*Theme
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{themes: make(map[string]*Theme)}
}

// Add inserts t under name. It reports false if name is already taken.
func (r *Registry) Add(name string, t *Theme) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.themes[name]; exists {
		return false
	}
	r.themes[name] = t
	r.order = append(r.order, name)
	return true
}

// Get returns the theme stored under name.
func (r *Registry) Get(name string) (*Theme, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.themes[name]
	return t, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Delete removes name. It reports whether anything was removed.
func (r *Registry) Delete(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.themes[name]; !exists {
		return false
	}
	delete(r.themes, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// First returns the earliest inserted theme still present.
func (r *Registry) First() (string, *Theme, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.order) == 0 {
		return "", nil, false
	}
	name := r.order[0]
	return name, r.themes[name], true
}

// Names returns theme names in insertion order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered themes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
