// Package style provides the style root that themes are written to, and
// renderers for its contents.
package style

import (
	"sync"

	"github.com/opencode-ai/themekit/internal/models"
)

// Root is an in-memory style root. Properties keep the order in which they
// were first set.
type Root struct {
	mu     sync.RWMutex
	order  []string
	values map[string]string
}

// NewRoot creates an empty Root.
func NewRoot() *Root {
	return &Root{values: make(map[string]string)}
}

// Property returns the value of name, or "" when unset.
func (r *Root) Property(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.values[name]
}

// SetProperty sets name to value.
func (r *Root) SetProperty(name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.values[name]; !exists {
		r.order = append(r.order, name)
	}
	r.values[name] = value
}

// Snapshot returns the properties in order.
func (r *Root) Snapshot() []models.Property {
	r.mu.RLock()
	defer r.mu.RUnlock()
	props := make([]models.Property, 0, len(r.order))
	for _, name := range r.order {
		props = append(props, models.Property{Name: name, Value: r.values[name]})
	}
	return props
}

// Restore replaces the contents of r with props.
func (r *Root) Restore(props []models.Property) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = r.order[:0]
	r.values = make(map[string]string, len(props))
	for _, p := range props {
		if _, exists := r.values[p.Name]; !exists {
			r.order = append(r.order, p.Name)
		}
		r.values[p.Name] = p.Value
	}
}

// Len returns the number of properties set.
func (r *Root) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
