package core

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuffer(t *testing.T) {
	buf := NewBuffer(20, 8)
	assert.Equal(t, 20, buf.Width())
	assert.Equal(t, 8, buf.Height())

	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			cell, ok := buf.GetCell(x, y)
			require.True(t, ok)
			assert.Equal(t, ' ', cell.Rune)
			assert.Zero(t, cell.Entity)
		}
	}
}

func TestBufferSetCellBounds(t *testing.T) {
	buf := NewBuffer(10, 10)
	cell := Cell{Rune: 'A', Style: tcell.StyleDefault.Foreground(tcell.ColorRed), Entity: 7}

	assert.True(t, buf.SetCell(5, 5, cell))
	got, ok := buf.GetCell(5, 5)
	require.True(t, ok)
	assert.Equal(t, cell, got)

	assert.False(t, buf.SetCell(-1, 5, cell))
	assert.False(t, buf.SetCell(5, 10, cell))
	_, ok = buf.GetCell(10, 0)
	assert.False(t, ok)
}

func TestBufferSpatialIndex(t *testing.T) {
	buf := NewBuffer(10, 10)

	buf.SetContent(2, 3, 'E', tcell.StyleDefault, 42)
	assert.Equal(t, Entity(42), buf.GetEntityAt(2, 3))
	assert.Zero(t, buf.GetEntityAt(5, 5))
	assert.Zero(t, buf.GetEntityAt(-1, 3), "out of bounds picks nothing")

	// Overwriting with an unowned cell releases ownership
	buf.SetContent(2, 3, ' ', tcell.StyleDefault, 0)
	assert.Zero(t, buf.GetEntityAt(2, 3))
}

func TestBufferClear(t *testing.T) {
	buf := NewBuffer(10, 10)
	buf.SetContent(1, 1, 'A', tcell.StyleDefault, 1)
	buf.SetContent(5, 5, 'B', tcell.StyleDefault, 2)

	style := tcell.StyleDefault.Background(tcell.ColorBlue)
	buf.Clear(style)

	cell, _ := buf.GetCell(1, 1)
	assert.Equal(t, ' ', cell.Rune)
	assert.Equal(t, style, cell.Style)
	assert.Zero(t, buf.GetEntityAt(1, 1))
	assert.Zero(t, buf.GetEntityAt(5, 5))
}

func TestBufferResize(t *testing.T) {
	buf := NewBuffer(10, 10)
	buf.SetContent(2, 2, 'A', tcell.StyleDefault, 100)
	buf.SetContent(8, 8, 'B', tcell.StyleDefault, 200)

	buf.Resize(15, 15)
	cell, _ := buf.GetCell(2, 2)
	assert.Equal(t, 'A', cell.Rune)
	assert.Equal(t, Entity(200), buf.GetEntityAt(8, 8))
	cell, _ = buf.GetCell(12, 12)
	assert.Equal(t, ' ', cell.Rune)

	// Shrinking clips both the grid and the spatial index
	buf.Resize(5, 5)
	assert.Equal(t, Entity(100), buf.GetEntityAt(2, 2))
	_, ok := buf.GetCell(8, 8)
	assert.False(t, ok)
	assert.Zero(t, buf.GetEntityAt(8, 8))
}

func TestBufferFlush(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(4, 2)

	buf := NewBuffer(4, 2)
	buf.SetContent(1, 1, 'K', tcell.StyleDefault.Bold(true), 9)
	buf.Flush(screen)

	r, _, style, _ := screen.GetContent(1, 1)
	assert.Equal(t, 'K', r)
	assert.Equal(t, tcell.StyleDefault.Bold(true), style)
}
