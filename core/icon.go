package core

import (
	"strings"

	"github.com/pkg/errors"
)

// CursorIcon identifies a pointer shape requested by a widget
// The terminal sink maps each icon onto the closest shape the terminal supports
type CursorIcon uint8

const (
	IconDefault CursorIcon = iota
	IconPointer
	IconGrab
	IconGrabbing
	IconNotAllowed
	IconMove
	IconText
	IconWait

	iconCount
)

var iconNames = [iconCount]string{
	IconDefault:    "default",
	IconPointer:    "pointer",
	IconGrab:       "grab",
	IconGrabbing:   "grabbing",
	IconNotAllowed: "not-allowed",
	IconMove:       "move",
	IconText:       "text",
	IconWait:       "wait",
}

// String returns the config name of the icon
func (c CursorIcon) String() string {
	if c >= iconCount {
		return "unknown"
	}
	return iconNames[c]
}

// Valid reports whether c is a known icon
func (c CursorIcon) Valid() bool {
	return c < iconCount
}

// ParseCursorIcon resolves a config name, case-insensitive
func ParseCursorIcon(name string) (CursorIcon, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range iconNames {
		if n == name {
			return CursorIcon(i), nil
		}
	}
	return IconDefault, errors.Errorf("unknown cursor icon %q", name)
}

// MarshalText implements encoding.TextMarshaler
func (c CursorIcon) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, errors.Errorf("invalid cursor icon %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *CursorIcon) UnmarshalText(text []byte) error {
	icon, err := ParseCursorIcon(string(text))
	if err != nil {
		return err
	}
	*c = icon
	return nil
}
