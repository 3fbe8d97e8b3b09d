package board

import (
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-chess/core"
	"github.com/lixenwraith/vi-chess/parameter"
)

func render(f *fixture) *core.Buffer {
	w, h := ScreenSize()
	buf := core.NewBuffer(w, h)
	f.board.Render(buf, f.world.Resources.Status, DefaultTheme)
	return buf
}

func rowText(buf *core.Buffer, y int) string {
	out := make([]rune, 0, buf.Width())
	for x := 0; x < buf.Width(); x++ {
		c, _ := buf.GetCell(x, y)
		out = append(out, c.Rune)
	}
	return string(out)
}

func TestRenderTagsSquareCells(t *testing.T) {
	f := newFixture(t)
	buf := render(f)

	for _, sq := range []chess.Square{chess.A1, chess.E2, chess.H8, chess.D5} {
		x, y := f.board.SquareOrigin(sq)
		want := f.board.SquareEntity(sq)
		assert.Equal(t, want, buf.GetEntityAt(x, y), sq.String())
		assert.Equal(t, want, buf.GetEntityAt(x+parameter.SquareWidth-1, y+parameter.SquareHeight-1), sq.String())
	}

	x, y := f.board.SquareOrigin(chess.E1)
	c, ok := buf.GetCell(x+parameter.SquareWidth/2-1, y)
	require.True(t, ok)
	assert.Equal(t, []rune(chess.WhiteKing.String())[0], c.Rune)

	assert.Equal(t, core.Entity(0), buf.GetEntityAt(0, 0))
	assert.Contains(t, rowText(buf, parameter.BoardTopMargin-2), "White to move")
	assert.Contains(t, rowText(buf, statusRow), "cursor default")
}

func TestRenderFlipped(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, chess.A8, f.board.SquareAt(0, 0))
	f.board.Flip()
	assert.True(t, f.board.Flipped())
	assert.Equal(t, chess.H1, f.board.SquareAt(0, 0))

	buf := render(f)
	x, y := f.board.SquareOrigin(chess.H1)
	assert.Equal(t, parameter.BoardLeftMargin, x)
	assert.Equal(t, parameter.BoardTopMargin, y)
	assert.Equal(t, f.board.SquareEntity(chess.H1), buf.GetEntityAt(x, y))
}

func TestRenderPicker(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.board.LoadFEN(promotionFEN))
	require.NoError(t, f.board.RequestMove(chess.A7, chess.A8))

	buf := render(f)
	for i, e := range f.board.PromotionChoices() {
		x, y := PickerOrigin(i)
		assert.Equal(t, e, buf.GetEntityAt(x, y))
	}
	assert.Contains(t, rowText(buf, messageRow), "choose a promotion")
}

func TestSquareAtRoundTrip(t *testing.T) {
	f := newFixture(t)
	for _, flipped := range []bool{false, true} {
		f.board.flipped = flipped
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				x, y := f.board.SquareOrigin(f.board.SquareAt(row, col))
				assert.Equal(t, parameter.BoardLeftMargin+col*parameter.SquareWidth, x)
				assert.Equal(t, parameter.BoardTopMargin+row*parameter.SquareHeight, y)
			}
		}
	}
}

func TestStatusLine(t *testing.T) {
	f := newFixture(t)
	line := StatusLine(f.world.Resources.Status)
	assert.Contains(t, line, "cursor default")
	assert.Contains(t, line, "depth 1")
	assert.Contains(t, line, "moves 0")
}
