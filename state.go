package autosize

import (
	"sync"

	"github.com/grindlemire/go-autosize/internal/debug"
)

// State wraps a value and notifies bindings when it is set.
//
// Every Set notifies, even when the new value equals the old one. Callers
// that want de-duplication compare before setting.
//
// Thread Safety Rules:
//   - Get() is safe to call from any goroutine
//   - Set() must only be called from the goroutine that owns the state
//     (the Loop, for states touched by host notifications)
//
// Example usage:
//
//	size := autosize.NewState(autosize.Size{})
//	size.Bind(func(s autosize.Size) {
//	    redraw(s)
//	})
//	size.Set(autosize.Size{Width: 80, Height: 24})
type State[T any] struct {
	mu       sync.RWMutex
	value    T
	bindings []*binding[T]
}

// binding represents a registered callback that fires when state changes.
type binding[T any] struct {
	fn     func(T)
	active bool
}

// Unbind is a handle to remove a binding. Call it to prevent
// future callback invocations for the associated binding.
type Unbind func()

// NewState creates a new state with the given initial value.
func NewState[T any](initial T) *State[T] {
	return &State[T]{value: initial}
}

// Get returns the current value. Thread-safe for reading from any goroutine.
func (s *State[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value and notifies all active bindings in registration
// order. Bindings run after the lock is released, so they may read the
// state or register new bindings.
func (s *State[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	// Drop inactive bindings so unbound callbacks don't accumulate.
	active := make([]*binding[T], 0, len(s.bindings))
	for _, b := range s.bindings {
		if b.active {
			active = append(active, b)
		}
	}
	s.bindings = active
	s.mu.Unlock()

	debug.Log("State.Set: executing %d bindings", len(active))
	for _, b := range active {
		if s.isActive(b) {
			b.fn(v)
		}
	}
}

// Update applies a function to the current value and sets the result.
func (s *State[T]) Update(fn func(T) T) {
	s.Set(fn(s.Get()))
}

// Bind registers a function to be called when the value is set.
// Returns an Unbind handle to remove the binding.
func (s *State[T]) Bind(fn func(T)) Unbind {
	s.mu.Lock()
	b := &binding[T]{fn: fn, active: true}
	s.bindings = append(s.bindings, b)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		b.active = false
		s.mu.Unlock()
	}
}

// isActive reports whether b is still bound. A binding removed by an
// earlier callback in the same Set does not run.
func (s *State[T]) isActive(b *binding[T]) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return b.active
}
