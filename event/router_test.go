package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingHandler struct {
	name  string
	types []EventType
	log   *[]string
}

func (h *recordingHandler) HandleEvent(ev GameEvent) {
	*h.log = append(*h.log, h.name+":"+ev.Type.String())
}

func (h *recordingHandler) EventTypes() []EventType {
	return h.types
}

func TestRouterDispatchOrder(t *testing.T) {
	var log []string
	eq := NewEventQueue()
	r := NewRouter(eq)
	r.Register(&recordingHandler{name: "cursor", types: []EventType{EventPointerEnter, EventPointerPress}, log: &log})
	r.Register(&recordingHandler{name: "board", types: []EventType{EventPointerPress}, log: &log})

	assert.Equal(t, 2, r.HandlerCount(EventPointerPress))
	assert.Equal(t, 0, r.HandlerCount(EventPointerDrop))

	eq.Push(GameEvent{Type: EventPointerEnter, Entity: 1})
	eq.Push(GameEvent{Type: EventPointerPress, Entity: 1})
	eq.Push(GameEvent{Type: EventPointerDrop, Entity: 2, Source: 1})

	n := r.DispatchAll()
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"cursor:enter", "cursor:press", "board:press"}, log)
	assert.Zero(t, r.DispatchAll())
}

func TestEventNames(t *testing.T) {
	et, ok := GetEventType("Release")
	assert.True(t, ok)
	assert.Equal(t, EventPointerRelease, et)
	assert.Equal(t, "release", et.String())

	_, ok = GetEventType("scroll")
	assert.False(t, ok)
	assert.Equal(t, "unknown", EventType(99).String())
}
