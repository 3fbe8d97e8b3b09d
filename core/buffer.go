package core

import (
	"github.com/gdamore/tcell/v2"
)

// Point represents a 2D cell coordinate
type Point struct {
	X, Y int
}

// Cell represents a single screen cell and the widget that owns it
type Cell struct {
	Rune   rune
	Style  tcell.Style
	Entity Entity // Owning widget for pointer picking (0 if none)
}

// Buffer is a 2D grid of cells with an entity spatial index
// The renderer draws into it each frame; the pointer picker reads GetEntityAt
type Buffer struct {
	width   int
	height  int
	lines   [][]Cell
	spatial map[Point]Entity
}

// NewBuffer creates a new buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *Buffer) Height() int {
	return b.height
}

// Resize reallocates the grid, preserving existing content where it still fits
func (b *Buffer) Resize(newWidth, newHeight int) {
	newLines := make([][]Cell, newHeight)
	for y := 0; y < newHeight; y++ {
		newLines[y] = make([]Cell, newWidth)
		for x := 0; x < newWidth; x++ {
			if y < b.height && x < b.width {
				newLines[y][x] = b.lines[y][x]
			} else {
				newLines[y][x] = Cell{Rune: ' ', Style: tcell.StyleDefault}
			}
		}
	}

	newSpatial := make(map[Point]Entity)
	for p, e := range b.spatial {
		if p.X < newWidth && p.Y < newHeight {
			newSpatial[p] = e
		}
	}

	b.width = newWidth
	b.height = newHeight
	b.lines = newLines
	b.spatial = newSpatial
}

// GetCell returns the cell at the given position
func (b *Buffer) GetCell(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.lines[y][x], true
}

// SetCell writes a cell and updates the spatial index
func (b *Buffer) SetCell(x, y int, cell Cell) bool {
	if !b.inBounds(x, y) {
		return false
	}

	b.lines[y][x] = cell
	p := Point{X: x, Y: y}
	if cell.Entity != 0 {
		b.spatial[p] = cell.Entity
	} else {
		delete(b.spatial, p)
	}
	return true
}

// SetContent is shorthand for SetCell
func (b *Buffer) SetContent(x, y int, r rune, style tcell.Style, entity Entity) bool {
	return b.SetCell(x, y, Cell{Rune: r, Style: style, Entity: entity})
}

// Clear blanks every cell and drops all entity ownership
func (b *Buffer) Clear(style tcell.Style) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.lines[y][x] = Cell{Rune: ' ', Style: style}
		}
	}
	b.spatial = make(map[Point]Entity)
}

// GetEntityAt returns the widget owning the cell (0 if none), O(1)
func (b *Buffer) GetEntityAt(x, y int) Entity {
	if !b.inBounds(x, y) {
		return 0
	}
	return b.spatial[Point{X: x, Y: y}]
}

// Flush copies the grid to a tcell screen; caller invokes Show
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.lines[y][x]
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}
