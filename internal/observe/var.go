// internal/observe/var.go

// Package observe provides a small mutable, observable value cell. Actions
// with persistent state (toggles, choices) share these cells with whatever
// UI widget displays them; both sides write freely and both sides get told.
package observe

import "sync"

// Listener is called with the new value after every write to a Var.
type Listener[T any] func(value T)

// Var is a mutable value cell that notifies registered listeners on every
// write, including writes that store the value already present.
type Var[T any] struct {
	mu        sync.Mutex
	value     T
	listeners []Listener[T]
}

// NewVar creates a cell holding initial. No listeners fire for the initial value.
func NewVar[T any](initial T) *Var[T] {
	return &Var[T]{value: initial}
}

// Get returns the current value.
func (v *Var[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.value
}

// Set stores value and invokes every listener with it, in registration
// order. Listeners run synchronously, outside the lock, so a listener may
// read or even write the cell again.
func (v *Var[T]) Set(value T) {
	v.mu.Lock()
	v.value = value
	listeners := make([]Listener[T], len(v.listeners))
	copy(listeners, v.listeners)
	v.mu.Unlock()

	for _, fn := range listeners {
		fn(value)
	}
}

// Listen registers fn to be called on every subsequent write.
func (v *Var[T]) Listen(fn Listener[T]) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.listeners = append(v.listeners, fn)
}
