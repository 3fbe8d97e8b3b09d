package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-chess/core"
	"github.com/lixenwraith/vi-chess/parameter"
)

func TestEventQueueFIFO(t *testing.T) {
	eq := NewEventQueue()
	eq.Push(GameEvent{Type: EventPointerEnter, Entity: 1, Frame: 1})
	eq.Push(GameEvent{Type: EventPointerPress, Entity: 1, Frame: 1})
	eq.Push(GameEvent{Type: EventPointerExit, Entity: 1, Frame: 2})
	assert.Equal(t, 3, eq.Len())

	events := eq.Consume()
	require.Len(t, events, 3)
	assert.Equal(t, EventPointerEnter, events[0].Type)
	assert.Equal(t, EventPointerPress, events[1].Type)
	assert.Equal(t, EventPointerExit, events[2].Type)

	assert.Empty(t, eq.Consume())
	assert.Zero(t, eq.Len())
}

func TestEventQueueConcurrentProducers(t *testing.T) {
	eq := NewEventQueue()
	const producers, perProducer = 8, 16

	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				eq.Push(GameEvent{Type: EventPointerEnter, Entity: core.Entity(p*100 + i + 1)})
			}
		}(p)
	}
	wg.Wait()

	events := eq.Consume()
	require.Len(t, events, producers*perProducer)

	seen := make(map[core.Entity]bool, len(events))
	for _, ev := range events {
		assert.False(t, seen[ev.Entity], "duplicate entity %d", ev.Entity)
		seen[ev.Entity] = true
	}
}

func TestEventQueueBurstLosesNothing(t *testing.T) {
	eq := NewEventQueue()
	total := 4*parameter.EventQueueSize + 100
	for i := 1; i <= total; i++ {
		eq.Push(GameEvent{Type: EventPointerEnter, Entity: core.Entity(i)})
	}
	assert.Equal(t, total, eq.Len())

	events := eq.Consume()
	require.Len(t, events, total)
	for i, ev := range events {
		assert.Equal(t, core.Entity(i+1), ev.Entity)
	}

	// Queue stays usable after shrinking back
	eq.Push(GameEvent{Type: EventPointerExit, Entity: 7})
	events = eq.Consume()
	require.Len(t, events, 1)
	assert.Equal(t, EventPointerExit, events[0].Type)
}

func TestEventQueuePushDuringConsumeLandsInNextBatch(t *testing.T) {
	eq := NewEventQueue()
	eq.Push(GameEvent{Type: EventPointerPress, Entity: 1})

	first := eq.Consume()
	eq.Push(GameEvent{Type: EventPointerRelease, Entity: 1})

	require.Len(t, first, 1)
	assert.Equal(t, EventPointerPress, first[0].Type)
	second := eq.Consume()
	require.Len(t, second, 1)
	assert.Equal(t, EventPointerRelease, second[0].Type)
}
