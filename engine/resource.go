package engine

import (
	"github.com/lixenwraith/vi-chess/core"
	"github.com/lixenwraith/vi-chess/logger"
	"github.com/lixenwraith/vi-chess/parameter"
	"github.com/lixenwraith/vi-chess/status"
)

// Resource holds process-wide singletons, created before any system and shared by reference
type Resource struct {
	Cursor *CursorResource
	Status *status.Registry
	Log    logger.Logger
}

// NewResource wires the singletons in their required order:
// the cursor stack exists and holds the baseline request before any binding can fire
func NewResource(defaultIcon core.CursorIcon, sink CursorSink, log logger.Logger) *Resource {
	if log == nil {
		log = logger.Discard
	}
	return &Resource{
		Cursor: NewCursorResource(defaultIcon, sink),
		Status: status.NewRegistry(),
		Log:    log,
	}
}

// CursorSink displays a cursor icon; implemented by the terminal layer
type CursorSink interface {
	SetCursorIcon(icon core.CursorIcon)
}

// CursorSinkFunc adapts a function to CursorSink
type CursorSinkFunc func(icon core.CursorIcon)

func (f CursorSinkFunc) SetCursorIcon(icon core.CursorIcon) {
	f(icon)
}

// CursorResource owns the global cursor request stack and mirrors its top to the sink
// Push and Remove are the cursor system's; everything else is read-only
type CursorResource struct {
	stack *core.PriorityStack[core.CursorIcon]

	baseline  core.Handle
	displayed core.CursorIcon
	sink      CursorSink
}

// NewCursorResource inserts the baseline request and asserts it on the sink
// The baseline is never removed, so PeekTop is always defined
func NewCursorResource(defaultIcon core.CursorIcon, sink CursorSink) *CursorResource {
	if sink == nil {
		sink = CursorSinkFunc(func(core.CursorIcon) {})
	}
	stack := core.NewPriorityStack[core.CursorIcon](parameter.CursorStackCapacity)
	r := &CursorResource{
		stack:     stack,
		baseline:  stack.InsertPrioritized(parameter.CursorPriorityBaseline, defaultIcon),
		displayed: defaultIcon,
		sink:      sink,
	}
	sink.SetCursorIcon(defaultIcon)
	return r
}

// Refresh pushes the current top to the sink and returns it
// On an empty stack the last displayed icon is retained and the sink is left alone
func (r *CursorResource) Refresh() core.CursorIcon {
	top, ok := r.stack.PeekTop()
	if !ok {
		return r.displayed
	}
	r.displayed = top
	r.sink.SetCursorIcon(top)
	return top
}

// Displayed returns the icon last sent to the sink
func (r *CursorResource) Displayed() core.CursorIcon {
	return r.displayed
}

// Baseline returns the handle of the initialization-time default request
func (r *CursorResource) Baseline() core.Handle {
	return r.baseline
}

// Push inserts a request and reports whether it became the top
func (r *CursorResource) Push(priority int, icon core.CursorIcon) (core.Handle, bool) {
	h := r.stack.InsertPrioritized(priority, icon)
	top, _ := r.stack.TopHandle()
	return h, top == h
}

// Remove drops a request; stale handles and the baseline are ignored
func (r *CursorResource) Remove(h core.Handle) (core.CursorIcon, bool) {
	if h == r.baseline {
		return 0, false
	}
	return r.stack.Remove(h)
}

// PeekTop returns the winning icon
func (r *CursorResource) PeekTop() (core.CursorIcon, bool) {
	return r.stack.PeekTop()
}

// Get returns the icon of a live request
func (r *CursorResource) Get(h core.Handle) (core.CursorIcon, bool) {
	return r.stack.Get(h)
}

// Len returns the number of live requests, baseline included
func (r *CursorResource) Len() int {
	return r.stack.Len()
}

// Snapshot returns the live requests in priority order
func (r *CursorResource) Snapshot() []core.Entry[core.CursorIcon] {
	return r.stack.Snapshot()
}

// Validate checks the stack's internal invariants
func (r *CursorResource) Validate() error {
	return r.stack.Validate()
}
