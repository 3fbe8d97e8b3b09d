package engine

import (
	"sync"

	"github.com/lixenwraith/vi-chess/component"
	"github.com/lixenwraith/vi-chess/core"
)

// World owns entity identity and all component stores
// Component stores are public for direct system access
type World struct {
	mu           sync.Mutex
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}

	// Cursor declarations and per-tier request tracking
	HoverCursors  *Store[component.CursorPreference]
	ClickCursors  *Store[component.CursorPreference]
	HoverTracking *Store[component.CursorTrackingComponent]
	ClickTracking *Store[component.CursorTrackingComponent]

	// Board widgets
	Squares    *Store[component.SquareComponent]
	Promotions *Store[component.PromotionChoiceComponent]

	Resources *Resource

	allStores       []AnyStore
	despawnHandlers []DespawnHandler
}

// NewWorld creates a world with all component stores initialized
func NewWorld(res *Resource) *World {
	w := &World{
		nextEntityID:  1,
		alive:         make(map[core.Entity]struct{}),
		HoverCursors:  NewStore[component.CursorPreference](),
		ClickCursors:  NewStore[component.CursorPreference](),
		HoverTracking: NewStore[component.CursorTrackingComponent](),
		ClickTracking: NewStore[component.CursorTrackingComponent](),
		Squares:       NewStore[component.SquareComponent](),
		Promotions:    NewStore[component.PromotionChoiceComponent](),
		Resources:     res,
	}

	w.allStores = []AnyStore{
		w.HoverCursors,
		w.ClickCursors,
		w.HoverTracking,
		w.ClickTracking,
		w.Squares,
		w.Promotions,
	}
	return w
}

// CursorStores returns the declaration and tracking stores for a tier
func (w *World) CursorStores(tier component.CursorTier) (*Store[component.CursorPreference], *Store[component.CursorTrackingComponent]) {
	if tier == component.TierClick {
		return w.ClickCursors, w.ClickTracking
	}
	return w.HoverCursors, w.HoverTracking
}

// CreateEntity allocates a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	w.alive[id] = struct{}{}
	return id
}

// RegisterDespawnHandler adds h to the teardown chain
// Must be called during setup, before any entity is destroyed
func (w *World) RegisterDespawnHandler(h DespawnHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.despawnHandlers = append(w.despawnHandlers, h)
}

// DestroyEntity tears an entity down: handlers first, then every store
// Destroying a dead entity is a no-op, so duplicate teardown paths are safe
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.Lock()
	if _, ok := w.alive[e]; !ok {
		w.mu.Unlock()
		return
	}
	delete(w.alive, e)
	handlers := make([]DespawnHandler, len(w.despawnHandlers))
	copy(handlers, w.despawnHandlers)
	w.mu.Unlock()

	// Handlers run unlocked; they read and mutate stores of the entity being destroyed
	for _, h := range handlers {
		h.OnDespawn(e)
	}
	for _, store := range w.allStores {
		store.discard(e)
	}
}

// IsAlive reports whether e was created and not yet destroyed
func (w *World) IsAlive(e core.Entity) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.alive[e]
	return ok
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.alive)
}

// HasAnyComponent checks if an entity has at least one component
func (w *World) HasAnyComponent(e core.Entity) bool {
	for _, store := range w.allStores {
		if store.Has(e) {
			return true
		}
	}
	return false
}
