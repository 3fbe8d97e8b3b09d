package trace

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-chess/component"
	"github.com/lixenwraith/vi-chess/core"
	"github.com/lixenwraith/vi-chess/engine"
	"github.com/lixenwraith/vi-chess/event"
	"github.com/lixenwraith/vi-chess/logger"
	"github.com/lixenwraith/vi-chess/system"
)

// Result is the observable state after one step
type Result struct {
	Index     int
	Step      Step
	Top       core.CursorIcon
	Displayed core.CursorIcon
	Depth     int
	SinkCalls int
	Checked   bool // Step carried an expectation
	Pass      bool
}

// Runner owns a headless world: recording sink, cursor system and event router
type Runner struct {
	trace   *Trace
	world   *engine.World
	sink    *engine.RecordingSink
	cursors *system.CursorSystem
	queue   *event.EventQueue
	router  *event.Router

	widgets  map[string]Widget
	entities map[string]core.Entity
	bindings map[string]map[component.CursorTier]*system.Binding
	frame    int64
}

// NewRunner spawns every declared widget with its declarations attached
func NewRunner(t *Trace, log logger.Logger) *Runner {
	sink := &engine.RecordingSink{}
	world := engine.NewWorld(engine.NewResource(t.DefaultIcon, sink, log))
	queue := event.NewEventQueue()
	r := &Runner{
		trace:    t,
		world:    world,
		sink:     sink,
		cursors:  system.NewCursorSystem(world),
		queue:    queue,
		router:   event.NewRouter(queue),
		widgets:  make(map[string]Widget, len(t.Widgets)),
		entities: make(map[string]core.Entity, len(t.Widgets)),
		bindings: make(map[string]map[component.CursorTier]*system.Binding, len(t.Widgets)),
	}
	r.router.Register(r.cursors)

	for _, w := range t.Widgets {
		r.widgets[w.Name] = w
		r.spawn(w.Name)
	}
	return r
}

// Run executes every step and reports one Result per step
// The returned error is non-nil if any expectation failed
func (r *Runner) Run() ([]Result, error) {
	results := make([]Result, 0, len(r.trace.Steps))
	failed := 0
	for i, s := range r.trace.Steps {
		res := r.Step(i, s)
		if res.Checked && !res.Pass {
			failed++
		}
		results = append(results, res)
	}
	if failed > 0 {
		return results, errors.Errorf("%d of %d expectations failed", failed, len(results))
	}
	return results, nil
}

// Step applies one step and reports the state afterwards
func (r *Runner) Step(i int, s Step) Result {
	r.frame++
	e := r.entities[s.Widget]

	switch s.Op {
	case OpSpawn:
		if e == 0 {
			r.spawn(s.Widget)
		}
	case OpDespawn:
		if e != 0 {
			r.world.DestroyEntity(e)
			delete(r.entities, s.Widget)
			delete(r.bindings, s.Widget)
		}
	case OpAttach:
		for _, tier := range tiers(s.Tier) {
			r.attach(s.Widget, tier)
		}
	case OpDetach:
		for _, tier := range tiers(s.Tier) {
			if b := r.bindings[s.Widget][tier]; b != nil {
				b.Detach()
				delete(r.bindings[s.Widget], tier)
			}
		}
	case OpEnter:
		r.emit(event.EventPointerEnter, e, 0)
	case OpExit:
		r.emit(event.EventPointerExit, e, 0)
	case OpPress:
		r.emit(event.EventPointerPress, e, 0)
	case OpRelease:
		r.emit(event.EventPointerRelease, e, 0)
	case OpDrop:
		r.emit(event.EventPointerDrop, r.entities[s.Target], e)
		r.emit(event.EventPointerRelease, e, 0)
	}
	r.router.DispatchAll()

	top, _ := r.world.Resources.Cursor.PeekTop()
	res := Result{
		Index:     i,
		Step:      s,
		Top:       top,
		Displayed: r.cursors.Displayed(),
		Depth:     r.world.Resources.Cursor.Len(),
		SinkCalls: len(r.sink.Calls),
	}
	if s.Expect != "" {
		want, err := core.ParseCursorIcon(s.Expect)
		res.Checked = true
		res.Pass = err == nil && want == top && want == res.Displayed
	}
	return res
}

// Sink returns the recording sink
func (r *Runner) Sink() *engine.RecordingSink {
	return r.sink
}

// Cursor returns the global cursor resource
func (r *Runner) Cursor() *engine.CursorResource {
	return r.world.Resources.Cursor
}

func (r *Runner) spawn(name string) {
	r.entities[name] = r.world.CreateEntity()
	for _, tier := range tiers("") {
		r.attach(name, tier)
	}
}

func (r *Runner) attach(name string, tier component.CursorTier) {
	e, ok := r.entities[name]
	if !ok {
		return
	}
	w := r.widgets[name]
	p := w.Hover
	if tier == component.TierClick {
		p = w.Click
	}
	if p == nil {
		return
	}
	if r.bindings[name] == nil {
		r.bindings[name] = make(map[component.CursorTier]*system.Binding, 2)
	}
	r.bindings[name][tier] = r.cursors.Attach(e, tier, component.CursorPreference{Icon: p.Icon, Priority: p.Priority})
}

func (r *Runner) emit(t event.EventType, target, source core.Entity) {
	if target == 0 {
		return
	}
	r.queue.Push(event.GameEvent{Type: t, Entity: target, Source: source, Frame: r.frame})
}

func tiers(name string) []component.CursorTier {
	switch name {
	case "hover":
		return []component.CursorTier{component.TierHover}
	case "click":
		return []component.CursorTier{component.TierClick}
	}
	return []component.CursorTier{component.TierHover, component.TierClick}
}
