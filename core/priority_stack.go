package core

import (
	"sync"

	"github.com/pkg/errors"
)

// Entry is a read-only view of one stored request
type Entry[T any] struct {
	Handle   Handle
	Priority int
	Value    T
}

// PriorityStack stores prioritized values and answers "which one wins" in O(1)
//
// Invariants, holding after every individual call:
//   - every handle in the index is live in the registry and vice versa
//   - PeekTop returns the value with the greatest priority; among equals, the latest inserted
//
// The mutex makes the registry/index pair move together when callers share the
// stack across goroutines; single-threaded callers pay one uncontended lock
type PriorityStack[T any] struct {
	mu     sync.Mutex
	values *Registry[T]
	order  *PriorityIndex
}

// NewPriorityStack creates an empty stack
func NewPriorityStack[T any](capacity int) *PriorityStack[T] {
	return &PriorityStack[T]{
		values: NewRegistry[T](capacity),
		order:  NewPriorityIndex(capacity),
	}
}

// InsertPrioritized stores value at priority and returns its handle
func (s *PriorityStack[T]) InsertPrioritized(priority int, value T) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.values.Insert(value)
	s.order.Insert(h, priority)
	return h
}

// Remove deletes the value behind h and returns it
// Removing a dead handle returns false and changes nothing
func (s *PriorityStack[T]) Remove(h Handle) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values.Remove(h)
	if !ok {
		return value, false
	}
	s.order.Remove(h)
	return value, true
}

// PeekTop returns the winning value; false only when the stack is empty
func (s *PriorityStack[T]) PeekTop() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.order.Last()
	if !ok {
		var zero T
		return zero, false
	}
	return s.values.Get(h)
}

// TopHandle returns the handle PeekTop would resolve
func (s *PriorityStack[T]) TopHandle() (Handle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Last()
}

// Get returns the value behind h without removing it
func (s *PriorityStack[T]) Get(h Handle) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values.Get(h)
}

// Len returns the number of stored values
func (s *PriorityStack[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values.Len()
}

// Snapshot returns every entry, lowest priority first
func (s *PriorityStack[T]) Snapshot() []Entry[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry[T], 0, len(s.order.entries))
	for _, e := range s.order.entries {
		value, _ := s.values.Get(e.handle)
		out = append(out, Entry[T]{Handle: e.handle, Priority: e.priority, Value: value})
	}
	return out
}

// Validate checks that registry and index agree
// Used by tests and the trace tool; a failure means a bug in this package
func (s *PriorityStack[T]) Validate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.values.Len() != s.order.Len() {
		return errors.Errorf("priority stack: registry holds %d values, index holds %d",
			s.values.Len(), s.order.Len())
	}
	for i, e := range s.order.entries {
		if !s.values.Contains(e.handle) {
			return errors.Errorf("priority stack: indexed handle %#x is dead", uint64(e.handle))
		}
		if i > 0 && s.order.entries[i-1].priority > e.priority {
			return errors.Errorf("priority stack: index out of order at %d", i)
		}
	}
	return nil
}
