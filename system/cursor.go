package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-chess/component"
	"github.com/lixenwraith/vi-chess/core"
	"github.com/lixenwraith/vi-chess/engine"
	"github.com/lixenwraith/vi-chess/event"
	"github.com/lixenwraith/vi-chess/logger"
	"github.com/lixenwraith/vi-chess/status"
)

// CursorSystem translates pointer events into pushes and pops on the global cursor stack
//
// Per (entity, tier) a widget is either untracked or holds a CursorTrackingComponent
// listing its outstanding requests. Enter/Press push, Exit/Release pop the most recent
// request of that tier, and despawn or Detach drops everything still outstanding.
// The sink is refreshed after every pop, and after a push only when the pushed request
// became the top.
type CursorSystem struct {
	world  *engine.World
	cursor *engine.CursorResource
	log    logger.Logger

	statPushes      *atomic.Int64
	statPops        *atomic.Int64
	statTeardowns   *atomic.Int64
	statSinkUpdates *atomic.Int64
	statDepth       *atomic.Int64
	statIcon        *status.AtomicString
}

// NewCursorSystem creates the system and registers it for entity teardown
func NewCursorSystem(world *engine.World) *CursorSystem {
	res := world.Resources
	s := &CursorSystem{
		world:  world,
		cursor: res.Cursor,
		log:    res.Log,

		statPushes:      res.Status.Ints.Get(status.CursorPushes),
		statPops:        res.Status.Ints.Get(status.CursorPops),
		statTeardowns:   res.Status.Ints.Get(status.CursorTeardowns),
		statSinkUpdates: res.Status.Ints.Get(status.CursorSinkUpdates),
		statDepth:       res.Status.Ints.Get(status.CursorDepth),
		statIcon:        res.Status.Strings.Get(status.CursorIcon),
	}
	world.RegisterDespawnHandler(s)
	s.publish(s.cursor.Displayed())
	return s
}

// Name returns system's name
func (s *CursorSystem) Name() string {
	return "cursor"
}

func (s *CursorSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPointerEnter,
		event.EventPointerExit,
		event.EventPointerPress,
		event.EventPointerRelease,
	}
}

func (s *CursorSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPointerEnter:
		s.push(ev.Entity, component.TierHover)
	case event.EventPointerExit:
		s.pop(ev.Entity, component.TierHover)
	case event.EventPointerPress:
		s.push(ev.Entity, component.TierClick)
	case event.EventPointerRelease:
		s.pop(ev.Entity, component.TierClick)
	}
}

// Binding is one widget's cursor declaration for one tier
// Detach removes the declaration and drops any requests it still holds
type Binding struct {
	system   *CursorSystem
	entity   core.Entity
	tier     component.CursorTier
	detached bool
}

// Entity returns the bound widget
func (b *Binding) Entity() core.Entity {
	return b.entity
}

// Tier returns the bound tier
func (b *Binding) Tier() component.CursorTier {
	return b.tier
}

// Detached reports whether Detach has run
func (b *Binding) Detached() bool {
	return b.detached
}

// Detach tears the binding down; repeated calls are no-ops
func (b *Binding) Detach() {
	if b.detached {
		return
	}
	b.detached = true
	prefs, _ := b.system.world.CursorStores(b.tier)
	prefs.Remove(b.entity)
	b.system.teardown(b.entity, b.tier)
}

// Attach declares that e wants pref while in tier and returns the binding
// Re-attaching replaces the declaration; requests already pushed keep their icon
// The holder tears down with Binding.Detach; despawning e through World.DestroyEntity
// tears down every binding on e as well, so a dropped Binding never leaks requests
func (s *CursorSystem) Attach(e core.Entity, tier component.CursorTier, pref component.CursorPreference) *Binding {
	prefs, _ := s.world.CursorStores(tier)
	prefs.Set(e, pref)
	return &Binding{system: s, entity: e, tier: tier}
}

// OnDespawn drops every request the entity still holds, across both tiers
func (s *CursorSystem) OnDespawn(e core.Entity) {
	s.teardown(e, component.TierHover)
	s.teardown(e, component.TierClick)
}

// Outstanding returns the entity's request handles for tier, oldest first
func (s *CursorSystem) Outstanding(e core.Entity, tier component.CursorTier) []core.Handle {
	_, tracking := s.world.CursorStores(tier)
	tc, ok := tracking.Get(e)
	if !ok {
		return nil
	}
	out := make([]core.Handle, len(tc.Handles))
	copy(out, tc.Handles)
	return out
}

// Displayed returns the icon currently shown
func (s *CursorSystem) Displayed() core.CursorIcon {
	return s.cursor.Displayed()
}

func (s *CursorSystem) push(e core.Entity, tier component.CursorTier) {
	prefs, tracking := s.world.CursorStores(tier)
	pref, ok := prefs.Get(e)
	if !ok {
		return
	}

	h, isTop := s.cursor.Push(pref.Priority, pref.Icon)
	tc, _ := tracking.Get(e)
	tc.Handles = append(tc.Handles, h)
	tracking.Set(e, tc)
	s.statPushes.Add(1)

	s.log.Debug("cursor push", "entity", e, "tier", tier, "icon", pref.Icon, "priority", pref.Priority, "depth", len(tc.Handles))

	if isTop {
		s.refresh()
	} else {
		s.publish(s.cursor.Displayed())
	}
}

func (s *CursorSystem) pop(e core.Entity, tier component.CursorTier) {
	_, tracking := s.world.CursorStores(tier)
	tc, ok := tracking.Get(e)
	if !ok || len(tc.Handles) == 0 {
		// Release over a widget that was never pressed, or a duplicate Exit
		return
	}

	last := len(tc.Handles) - 1
	h := tc.Handles[last]
	tc.Handles = tc.Handles[:last]
	if len(tc.Handles) == 0 {
		tracking.Remove(e)
	} else {
		tracking.Set(e, tc)
	}

	icon, _ := s.cursor.Remove(h)
	s.statPops.Add(1)
	s.log.Debug("cursor pop", "entity", e, "tier", tier, "icon", icon)
	s.refresh()
}

func (s *CursorSystem) teardown(e core.Entity, tier component.CursorTier) {
	_, tracking := s.world.CursorStores(tier)
	tc, ok := tracking.Remove(e)
	if !ok {
		return
	}

	for i := len(tc.Handles) - 1; i >= 0; i-- {
		s.cursor.Remove(tc.Handles[i])
	}
	s.statTeardowns.Add(int64(len(tc.Handles)))
	s.log.Debug("cursor teardown", "entity", e, "tier", tier, "dropped", len(tc.Handles))
	s.refresh()
}

func (s *CursorSystem) refresh() {
	icon := s.cursor.Refresh()
	s.statSinkUpdates.Add(1)
	s.publish(icon)
}

func (s *CursorSystem) publish(icon core.CursorIcon) {
	s.statIcon.Store(icon.String())
	s.statDepth.Store(int64(s.cursor.Len()))
}
