package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-chess/event"
)

func TestMachineKeys(t *testing.T) {
	m := NewMachine(nil)

	tests := []struct {
		name string
		ev   tcell.Event
		want IntentType
	}{
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{"n", tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), IntentNewGame},
		{"f", tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone), IntentFlip},
		{"resize", tcell.NewEventResize(80, 24), IntentResize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := m.Process(tt.ev)
			require.NotNil(t, intent)
			assert.Equal(t, tt.want, intent.Type)
		})
	}

	assert.Nil(t, m.Process(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)))
	assert.Nil(t, m.Process(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone)), "no picker")
}

func TestMachineMouseGoesToPicker(t *testing.T) {
	q := event.NewEventQueue()
	m := NewMachine(NewPicker(q, twoWidgets()))

	intent := m.Process(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	require.NotNil(t, intent)
	assert.Equal(t, IntentPointer, intent.Type)
	assert.Len(t, q.Consume(), 1)

	assert.Nil(t, m.Process(tcell.NewEventMouse(1, 0, tcell.ButtonNone, tcell.ModNone)), "no transition")
}
