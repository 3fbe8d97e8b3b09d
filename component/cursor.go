package component

import (
	"github.com/lixenwraith/vi-chess/core"
)

// CursorTier is the interaction category a cursor request belongs to
// Tiers keep independent per-widget stacks but share the global priority stack
type CursorTier uint8

const (
	TierHover CursorTier = iota
	TierClick
)

// String returns the tier name used in logs and traces
func (t CursorTier) String() string {
	switch t {
	case TierHover:
		return "hover"
	case TierClick:
		return "click"
	default:
		return "unknown"
	}
}

// CursorPreference declares the icon a widget wants for one tier
// Copied into the request at push time; immutable afterwards
type CursorPreference struct {
	Icon     core.CursorIcon
	Priority int
}

// CursorTrackingComponent holds the requests a widget has outstanding for one tier
// Present only while non-empty; the last handle is the most recent push
type CursorTrackingComponent struct {
	Handles []core.Handle
}
