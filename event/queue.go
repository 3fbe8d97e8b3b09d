package event

import (
	"sync"

	"github.com/lixenwraith/vi-chess/parameter"
)

// EventQueue is an unbounded MPSC FIFO for pointer events
// Thread-Safety:
//   - Push: multiple producers OK (input goroutine, game loop)
//   - Consume: single consumer (game loop)
//
// Overflow: none; the backing slice grows past EventQueueSize instead of
// overwriting, so a queued Exit or Release is always delivered
type EventQueue struct {
	mu     sync.Mutex
	events []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, parameter.EventQueueSize)}
}

// Push appends event. O(1) amortized
func (eq *EventQueue) Push(event GameEvent) {
	eq.mu.Lock()
	eq.events = append(eq.events, event)
	eq.mu.Unlock()
}

// Consume returns all pending events in FIFO order and empties the queue
// Events pushed while the caller works through the result land in the next batch
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.events) == 0 {
		return nil
	}
	result := eq.events
	next := cap(result)
	if next > parameter.EventQueueSize {
		// Shrink back after a burst
		next = parameter.EventQueueSize
	}
	eq.events = make([]GameEvent, 0, next)
	return result
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.events)
}
