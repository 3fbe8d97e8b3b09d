// Package terminal owns the tcell screen: lifecycle, input polling and the cursor sink
//
// The sink displays a cursor icon two ways: the text cursor shape through
// tcell.Screen.SetCursorStyle, and the mouse pointer shape through the OSC 22
// sequence understood by xterm, kitty, foot and WezTerm. Terminals that ignore
// OSC 22 still show the text cursor shape.
package terminal
