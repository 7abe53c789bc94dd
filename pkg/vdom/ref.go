package vdom

import "sync"

// Ref is a mutable cell used as the value of a two-way binding.
type Ref interface {
	Get() any
	Set(v any)
}

// ValueRef is a Ref guarded by a mutex.
type ValueRef struct {
	mu sync.RWMutex
	v  any
}

// NewRef creates a ValueRef holding v.
func NewRef(v any) *ValueRef {
	return &ValueRef{v: v}
}

// Get returns the current value.
func (r *ValueRef) Get() any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.v
}

// Set replaces the current value.
func (r *ValueRef) Set(v any) {
	r.mu.Lock()
	r.v = v
	r.mu.Unlock()
}
