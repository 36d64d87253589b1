package widget

import (
	"sync"

	"github.com/dshills/hitbox/internal/geom"
	"github.com/dshills/hitbox/internal/input"
)

// Registry holds buttons in registration order. Registration order is the
// priority order in which buttons see events, so it is preserved exactly;
// the registry additionally indexes buttons by id for geometry updates from
// a reloaded layout.
//
// The registry does not enforce id uniqueness. Add replaces the index entry
// for a duplicate id but keeps both buttons in the chain, matching the
// pipeline's behavior for colliding ids.
type Registry struct {
	mu      sync.RWMutex
	ordered []*Button
	byID    map[uint32]*Button
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID: make(map[uint32]*Button),
	}
}

// Add appends a button to the registry.
func (r *Registry) Add(b *Button) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ordered = append(r.ordered, b)
	r.byID[b.ID()] = b
}

// Get returns the button with the given id.
func (r *Registry) Get(id uint32) (*Button, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	return b, ok
}

// Len returns the number of registered buttons.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ordered)
}

// Buttons returns the buttons in registration order.
func (r *Registry) Buttons() []*Button {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Button, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Processors returns the buttons in registration order as pipeline
// processors, ready for input.Pipeline.Register.
func (r *Registry) Processors() []input.Processor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]input.Processor, len(r.ordered))
	for i, b := range r.ordered {
		out[i] = b
	}
	return out
}

// SetBounds updates the region of the button with the given id. It returns
// false if no such button is registered. Capture state is kept across the
// update.
func (r *Registry) SetBounds(id uint32, bounds geom.Rect) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok {
		return false
	}
	b.SetBounds(bounds)
	return true
}

// ResetAll drops any capture in progress on every button.
func (r *Registry) ResetAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.ordered {
		b.Reset()
	}
}
