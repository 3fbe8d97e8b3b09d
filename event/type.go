package event

import (
	"github.com/lixenwraith/vi-chess/core"
)

// EventType represents the type of game event
type EventType int

const (
	// EventPointerEnter fires when the pointer moves onto a widget
	// Trigger: input.Picker | Consumer: CursorSystem (push hover)
	EventPointerEnter EventType = iota + 1

	// EventPointerExit fires when the pointer leaves a widget it entered
	// Trigger: input.Picker | Consumer: CursorSystem (pop hover)
	EventPointerExit

	// EventPointerPress fires on primary button down over a widget
	// Trigger: input.Picker | Consumer: CursorSystem (push click), board
	EventPointerPress

	// EventPointerRelease fires on primary button up, targeting the pressed widget
	// Trigger: input.Picker | Consumer: CursorSystem (pop click), board
	EventPointerRelease

	// EventPointerDrop fires just before Release when the button comes up over a different widget
	// Entity is the widget under the pointer; Source is the pressed widget
	// Trigger: input.Picker | Consumer: board (move request)
	EventPointerDrop
)

// GameEvent is a single routed event
type GameEvent struct {
	Type   EventType
	Entity core.Entity // Target widget
	Source core.Entity // Dragged widget for EventPointerDrop, 0 otherwise
	Frame  int64
}
