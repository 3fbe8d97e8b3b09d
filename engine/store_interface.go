package engine

import (
	"github.com/lixenwraith/vi-chess/core"
)

// AnyStore provides type-erased operations for lifecycle management
// World uses it to clear an entity from every store without knowing concrete types
type AnyStore interface {
	// Has checks if an entity has this component
	Has(e core.Entity) bool

	// Count returns the number of entities with this component
	Count() int

	// Clear removes all components from this store
	Clear()

	discard(e core.Entity)
}

// DespawnHandler is notified before a destroyed entity's components are dropped
// Registered explicitly with World.RegisterDespawnHandler; invoked in registration order
type DespawnHandler interface {
	OnDespawn(e core.Entity)
}
