package engine

import (
	"github.com/lixenwraith/vi-chess/core"
	"github.com/lixenwraith/vi-chess/logger"
)

// RecordingSink is a CursorSink that remembers every icon it was asked to display
// Used by tests and the headless trace tool
type RecordingSink struct {
	Calls []core.CursorIcon
}

func (s *RecordingSink) SetCursorIcon(icon core.CursorIcon) {
	s.Calls = append(s.Calls, icon)
}

// Last returns the most recently displayed icon
func (s *RecordingSink) Last() core.CursorIcon {
	if len(s.Calls) == 0 {
		return core.IconDefault
	}
	return s.Calls[len(s.Calls)-1]
}

// Reset forgets recorded calls
func (s *RecordingSink) Reset() {
	s.Calls = s.Calls[:0]
}

// NewTestWorld creates a headless world whose cursor resource reports to a RecordingSink
func NewTestWorld(defaultIcon core.CursorIcon) (*World, *RecordingSink) {
	sink := &RecordingSink{}
	res := NewResource(defaultIcon, sink, logger.Discard)
	return NewWorld(res), sink
}
