package engine

import (
	"sync"

	"github.com/lixenwraith/vi-chess/core"
)

// Store is a generic container for a specific component type T
// Dense entity slice keeps iteration order stable and allocation-free
type Store[T any] struct {
	mu         sync.RWMutex
	components map[core.Entity]T
	entities   []core.Entity
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 64),
	}
}

// Set inserts or replaces the component for an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get retrieves the component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.components[e]
	return val, ok
}

// Remove deletes the entity's component, returning what was stored
func (s *Store[T]) Remove(e core.Entity) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	val, exists := s.components[e]
	if !exists {
		return val, false
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			// Order-preserving: render and picking iterate this slice
			copy(s.entities[i:], s.entities[i+1:])
			s.entities = s.entities[:len(s.entities)-1]
			break
		}
	}
	return val, true
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.components[e]
	return ok
}

// All returns all entities with this component type in insertion order
func (s *Store[T]) All() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = make(map[core.Entity]T)
	s.entities = make([]core.Entity, 0, 64)
}

// discard satisfies AnyStore, dropping the returned value
func (s *Store[T]) discard(e core.Entity) {
	s.Remove(e)
}
