package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-chess/core"
	"github.com/lixenwraith/vi-chess/event"
)

// HitTester resolves a screen cell to the widget drawn there
// core.Buffer implements it from the last rendered frame
type HitTester interface {
	GetEntityAt(x, y int) core.Entity
}

// Picker turns raw pointer state into widget-level pointer events
//
// The widget under the primary button when it went down captures the pointer:
// it receives the Release wherever the button comes up. If that is over a different
// widget, a Drop to that widget is queued first, so a drop handler may despawn the
// dragged widget while its click request is still outstanding.
type Picker struct {
	queue *event.EventQueue
	hits  HitTester

	hovered core.Entity
	pressed core.Entity
	down    bool
	x, y    int
	frame   int64
}

// NewPicker creates a picker resolving hits against hits and queueing into queue
func NewPicker(queue *event.EventQueue, hits HitTester) *Picker {
	return &Picker{queue: queue, hits: hits, x: -1, y: -1}
}

// SetFrame stamps subsequent events with frame
func (p *Picker) SetFrame(frame int64) {
	p.frame = frame
}

// HandleMouse processes one tcell mouse event and returns the number of events queued
func (p *Picker) HandleMouse(ev *tcell.EventMouse) int {
	x, y := ev.Position()
	return p.Pointer(x, y, ev.Buttons()&tcell.Button1 != 0)
}

// Pointer processes the pointer at (x, y) with the primary button state
func (p *Picker) Pointer(x, y int, down bool) int {
	p.x, p.y = x, y
	under := p.hits.GetEntityAt(x, y)
	n := p.moveTo(under)

	switch {
	case down && !p.down:
		p.down = true
		p.pressed = under
		if under != 0 {
			p.emit(event.EventPointerPress, under, 0)
			n++
		}
	case !down && p.down:
		p.down = false
		pressed := p.pressed
		p.pressed = 0
		switch {
		case pressed != 0:
			if under != 0 && under != pressed {
				p.emit(event.EventPointerDrop, under, pressed)
				n++
			}
			p.emit(event.EventPointerRelease, pressed, 0)
			n++
		case under != 0:
			// Pressed over empty space; the widget gets a Release it never saw pressed
			p.emit(event.EventPointerRelease, under, 0)
			n++
		}
	}
	return n
}

// Resync re-resolves the last pointer position after widgets were rebuilt
// A despawned hovered widget is forgotten without an Exit; its requests are already gone
func (p *Picker) Resync(alive func(core.Entity) bool) int {
	if p.hovered != 0 && !alive(p.hovered) {
		p.hovered = 0
	}
	if p.pressed != 0 && !alive(p.pressed) {
		p.pressed = 0
	}
	if p.x < 0 {
		return 0
	}
	return p.moveTo(p.hits.GetEntityAt(p.x, p.y))
}

// Hovered returns the widget currently under the pointer
func (p *Picker) Hovered() core.Entity {
	return p.hovered
}

// Pressed returns the widget holding pointer capture, 0 if none
func (p *Picker) Pressed() core.Entity {
	return p.pressed
}

func (p *Picker) moveTo(under core.Entity) int {
	if under == p.hovered {
		return 0
	}
	n := 0
	if p.hovered != 0 {
		p.emit(event.EventPointerExit, p.hovered, 0)
		n++
	}
	p.hovered = under
	if under != 0 {
		p.emit(event.EventPointerEnter, under, 0)
		n++
	}
	return n
}

func (p *Picker) emit(t event.EventType, target, source core.Entity) {
	p.queue.Push(event.GameEvent{Type: t, Entity: target, Source: source, Frame: p.frame})
}
