package terminal

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-chess/core"
)

const oscPointerReset = "\x1b]22;\x07"

// CursorStyler is the part of tcell.Screen the sink drives
type CursorStyler interface {
	SetCursorStyle(style tcell.CursorStyle, color ...tcell.Color)
	ShowCursor(x, y int)
	HideCursor()
	Show()
}

// Text cursor shape per visible icon, one distinct shape each
// IconDefault hides the text cursor, which frees CursorStyleDefault for IconWait
var cursorStyles = [...]tcell.CursorStyle{
	core.IconDefault:    tcell.CursorStyleDefault,
	core.IconPointer:    tcell.CursorStyleSteadyBar,
	core.IconGrab:       tcell.CursorStyleSteadyBlock,
	core.IconGrabbing:   tcell.CursorStyleBlinkingBlock,
	core.IconNotAllowed: tcell.CursorStyleSteadyUnderline,
	core.IconMove:       tcell.CursorStyleBlinkingUnderline,
	core.IconText:       tcell.CursorStyleBlinkingBar,
	core.IconWait:       tcell.CursorStyleDefault,
}

// CursorStyleFor returns the text cursor shape used for icon
func CursorStyleFor(icon core.CursorIcon) tcell.CursorStyle {
	if !icon.Valid() {
		return tcell.CursorStyleDefault
	}
	return cursorStyles[icon]
}

// Sink displays cursor icons on a terminal
// Implements engine.CursorSink; called synchronously from the game loop
//
// tcell writes the shape escape only while the text cursor is on screen, so
// the sink parks the cursor on the pointer cell for any icon but IconDefault
type Sink struct {
	styler  CursorStyler
	pointer io.Writer

	icon   core.CursorIcon
	x, y   int
	placed bool
}

// NewSink drives styler's cursor shape and, when pointer is non-nil, writes OSC 22 to it
func NewSink(styler CursorStyler, pointer io.Writer) *Sink {
	return &Sink{styler: styler, pointer: pointer}
}

// SetCursorIcon applies icon immediately
func (s *Sink) SetCursorIcon(icon core.CursorIcon) {
	s.icon = icon
	if s.styler != nil {
		s.place()
		s.styler.Show()
	}
	if s.pointer != nil {
		// CSS cursor names double as OSC 22 pointer names
		fmt.Fprintf(s.pointer, "\x1b]22;%s\x07", icon)
	}
}

// MoveTo records the pointer cell; a visible text cursor follows it on the next Show
func (s *Sink) MoveTo(x, y int) {
	s.x, s.y, s.placed = x, y, true
	if s.styler != nil {
		s.place()
	}
}

// Icon returns the icon last applied
func (s *Sink) Icon() core.CursorIcon {
	return s.icon
}

func (s *Sink) place() {
	if s.icon == core.IconDefault || !s.placed {
		s.styler.HideCursor()
		return
	}
	s.styler.SetCursorStyle(CursorStyleFor(s.icon))
	s.styler.ShowCursor(s.x, s.y)
}

// Reset returns the pointer to the terminal's own default
func (s *Sink) Reset() {
	if s.styler != nil {
		s.styler.HideCursor()
		s.styler.SetCursorStyle(tcell.CursorStyleDefault)
	}
	if s.pointer != nil {
		io.WriteString(s.pointer, oscPointerReset)
	}
}
