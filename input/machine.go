package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell events into Intents
// Mouse events are handed to the Picker, which queues pointer events for the router
type Machine struct {
	picker *Picker
}

// NewMachine creates a machine feeding mouse input to picker
func NewMachine(picker *Picker) *Machine {
	return &Machine{picker: picker}
}

// Process parses a tcell event and returns an Intent
// Returns nil if the event carries no action
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		if m.picker == nil {
			return nil
		}
		if m.picker.HandleMouse(ev) == 0 {
			return nil
		}
		return &Intent{Type: IntentPointer}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ, tcell.KeyEscape:
		return &Intent{Type: IntentQuit}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return &Intent{Type: IntentQuit}
		case 'n':
			return &Intent{Type: IntentNewGame}
		case 'f':
			return &Intent{Type: IntentFlip}
		}
	}
	return nil
}
