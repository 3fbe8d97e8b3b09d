package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-chess/core"
)

func TestCursorResourceBaseline(t *testing.T) {
	sink := &RecordingSink{}
	r := NewCursorResource(core.IconPointer, sink)

	assert.Equal(t, []core.CursorIcon{core.IconPointer}, sink.Calls, "baseline asserted on construction")
	icon, ok := r.PeekTop()
	require.True(t, ok)
	assert.Equal(t, core.IconPointer, icon)
	assert.Equal(t, core.IconPointer, r.Displayed())

	snap := r.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, r.Baseline(), snap[0].Handle)
}

func TestCursorResourceRefresh(t *testing.T) {
	sink := &RecordingSink{}
	r := NewCursorResource(core.IconDefault, sink)

	h, isTop := r.Push(1, core.IconWait)
	assert.True(t, isTop)
	assert.Equal(t, core.IconWait, r.Refresh())
	assert.Equal(t, core.IconWait, sink.Last())

	icon, ok := r.Remove(h)
	require.True(t, ok)
	assert.Equal(t, core.IconWait, icon)
	assert.Equal(t, core.IconDefault, r.Refresh())
	assert.Equal(t, core.IconDefault, r.Displayed())
}

func TestCursorResourceEmptyRetainsLastIcon(t *testing.T) {
	sink := &RecordingSink{}
	r := NewCursorResource(core.IconDefault, sink)
	r.Push(2, core.IconText)
	r.Refresh()

	// Unreachable through the exported API: drop everything, baseline included
	for _, e := range r.stack.Snapshot() {
		r.stack.Remove(e.Handle)
	}
	calls := len(sink.Calls)
	assert.Equal(t, core.IconText, r.Refresh())
	assert.Len(t, sink.Calls, calls, "sink untouched on empty stack")
}

func TestCursorResourceGuardsBaseline(t *testing.T) {
	r := NewCursorResource(core.IconDefault, nil)

	_, ok := r.Remove(r.Baseline())
	assert.False(t, ok)
	assert.Equal(t, 1, r.Len())

	_, isTop := r.Push(-1, core.IconWait)
	assert.False(t, isTop, "below-baseline request never wins")
	icon, _ := r.PeekTop()
	assert.Equal(t, core.IconDefault, icon)
	assert.NoError(t, r.Validate())
}

func TestCursorSinkFunc(t *testing.T) {
	var got core.CursorIcon
	r := NewCursorResource(core.IconMove, CursorSinkFunc(func(icon core.CursorIcon) { got = icon }))
	assert.Equal(t, core.IconMove, got)
	assert.NotNil(t, r)

	// Nil sink is tolerated for headless use
	assert.NotPanics(t, func() { NewCursorResource(core.IconDefault, nil).Refresh() })
}
