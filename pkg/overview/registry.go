package overview

import "sync"

// Registry tracks the single currently-created container of one class.
//
// Lifecycle: the host container's own start hook calls SetCreated and its
// stop hook calls ClearCreated; the transition subsystem only observes.
// Lookups against an empty registry return absent, never fail, and never
// create a container as a side effect.
type Registry[C any] struct {
	mu      sync.Mutex
	created C
	ok      bool

	listeners map[int]func(c C, alreadyOnHome bool) bool
	nextID    int
}

// NewRegistry creates an empty registry.
func NewRegistry[C any]() *Registry[C] {
	return &Registry[C]{
		listeners: make(map[int]func(C, bool) bool),
	}
}

// SetCreated records the current container instance and notifies creation
// listeners. alreadyOnHome reports whether the home surface was
// foreground when the container came up. A listener returning true is
// considered handled and removed.
func (r *Registry[C]) SetCreated(c C, alreadyOnHome bool) {
	r.mu.Lock()
	r.created = c
	r.ok = true
	listeners := make(map[int]func(C, bool) bool, len(r.listeners))
	for id, fn := range r.listeners {
		listeners[id] = fn
	}
	r.mu.Unlock()

	for id, fn := range listeners {
		if fn(c, alreadyOnHome) {
			r.mu.Lock()
			delete(r.listeners, id)
			r.mu.Unlock()
		}
	}
}

// ClearCreated forgets the current instance. Called from the container's
// stop hook.
func (r *Registry[C]) ClearCreated() {
	r.mu.Lock()
	var zero C
	r.created = zero
	r.ok = false
	r.mu.Unlock()
}

// Created returns the current instance, or false when none exists.
func (r *Registry[C]) Created() (C, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.created, r.ok
}

// AddCreationListener registers a callback invoked on SetCreated. The
// callback is removed once it returns true. Returns an unsubscribe
// function for listeners that never fire.
func (r *Registry[C]) AddCreationListener(fn func(c C, alreadyOnHome bool) bool) func() {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.listeners[id] = fn
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		delete(r.listeners, id)
		r.mu.Unlock()
	}
}
