package autosize

import "sync"

// Ref receives an AutoSizer's container element (see WithRef) so callers
// can reach it from handlers without keeping the sizer around. Thread-safe.
type Ref struct {
	mu sync.RWMutex
	el *Element
}

// NewRef creates an empty Ref.
func NewRef() *Ref {
	return &Ref{}
}

// Set stores el.
func (r *Ref) Set(el *Element) {
	r.mu.Lock()
	r.el = el
	r.mu.Unlock()
}

// El returns the stored element, or nil.
func (r *Ref) El() *Element {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.el
}

// IsSet reports whether an element has been stored.
func (r *Ref) IsSet() bool {
	return r.El() != nil
}
