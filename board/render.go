package board

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/notnil/chess"

	"github.com/lixenwraith/vi-chess/core"
	"github.com/lixenwraith/vi-chess/parameter"
	"github.com/lixenwraith/vi-chess/status"
)

// Theme holds the board palette
type Theme struct {
	SquareLight tcell.Color
	SquareDark  tcell.Color
	SquareLast  tcell.Color
	Picker      tcell.Color
	White       tcell.Color
	Black       tcell.Color
	Label       tcell.Color
	Status      tcell.Color
	Message     tcell.Color
}

var DefaultTheme = Theme{
	SquareLight: tcell.NewRGBColor(0xe6, 0xd2, 0xb4),
	SquareDark:  tcell.NewRGBColor(0x8b, 0x6b, 0x4a),
	SquareLast:  tcell.NewRGBColor(0xc8, 0xb8, 0x48),
	Picker:      tcell.NewRGBColor(0x5a, 0x7d, 0x9a),
	White:       tcell.ColorWhite,
	Black:       tcell.ColorBlack,
	Label:       tcell.ColorGray,
	Status:      tcell.ColorSilver,
	Message:     tcell.ColorYellow,
}

// Screen positions derived from the layout parameters
const (
	fileLabelRow = parameter.BoardTopMargin + 8*parameter.SquareHeight
	statusRow    = fileLabelRow + parameter.StatusLineOffset
	messageRow   = statusRow + 1
	pickerLeft   = parameter.BoardLeftMargin + 8*parameter.SquareWidth + parameter.PromotionGap
)

// ScreenSize returns the smallest screen the layout fits in
func ScreenSize() (int, int) {
	return pickerLeft + parameter.SquareWidth + parameter.BoardLeftMargin, messageRow + 2
}

// SquareAt maps a board grid position, row 0 at the top, to the square drawn there
func (b *Board) SquareAt(row, col int) chess.Square {
	if b.flipped {
		return chess.Square(row*8 + (7 - col))
	}
	return chess.Square((7-row)*8 + col)
}

// SquareOrigin returns the top-left cell of sq's widget
func (b *Board) SquareOrigin(sq chess.Square) (int, int) {
	row, col := 7-int(sq.Rank()), int(sq.File())
	if b.flipped {
		row, col = int(sq.Rank()), 7-int(sq.File())
	}
	return parameter.BoardLeftMargin + col*parameter.SquareWidth, parameter.BoardTopMargin + row*parameter.SquareHeight
}

// PickerOrigin returns the top-left cell of the i-th promotion choice
func PickerOrigin(i int) (int, int) {
	return pickerLeft, parameter.BoardTopMargin + i*parameter.SquareHeight
}

// Render draws the board, picker and status line into buf, tagging widget cells
func (b *Board) Render(buf *core.Buffer, reg *status.Registry, theme Theme) {
	buf.Clear(tcell.StyleDefault)

	turn := b.game.Position().Turn()
	drawText(buf, parameter.BoardLeftMargin, parameter.BoardTopMargin-2, tcell.StyleDefault.Foreground(theme.Label).Bold(true),
		fmt.Sprintf("%s to move", turn.Name()), buf.Width())

	last := b.lastMove()
	board := b.game.Position().Board()
	for row := 0; row < 8; row++ {
		rank := b.SquareAt(row, 0).Rank()
		y := parameter.BoardTopMargin + row*parameter.SquareHeight
		drawText(buf, parameter.BoardLeftMargin-2, y, tcell.StyleDefault.Foreground(theme.Label), rank.String(), 1)

		for col := 0; col < 8; col++ {
			sq := b.SquareAt(row, col)
			bg := theme.SquareLight
			if (int(sq.File())+int(sq.Rank()))%2 == 0 {
				bg = theme.SquareDark
			}
			if last != nil && (last.S1() == sq || last.S2() == sq) {
				bg = theme.SquareLast
			}
			x, y := b.SquareOrigin(sq)
			drawWidget(buf, x, y, board.Piece(sq), bg, b.squares[sq].entity, theme)
		}
	}

	for col := 0; col < 8; col++ {
		x, _ := b.SquareOrigin(b.SquareAt(0, col))
		drawText(buf, x+parameter.SquareWidth/2-1, fileLabelRow, tcell.StyleDefault.Foreground(theme.Label),
			b.SquareAt(0, col).File().String(), 1)
	}

	for i, e := range b.promotion {
		choice, ok := b.world.Promotions.Get(e)
		if !ok {
			continue
		}
		x, y := PickerOrigin(i)
		drawWidget(buf, x, y, chess.NewPiece(choice.Piece, turn), theme.Picker, e, theme)
	}

	drawText(buf, parameter.BoardLeftMargin, statusRow, tcell.StyleDefault.Foreground(theme.Status), StatusLine(reg), buf.Width()-parameter.BoardLeftMargin)
	drawText(buf, parameter.BoardLeftMargin, messageRow, tcell.StyleDefault.Foreground(theme.Message), b.message, buf.Width()-parameter.BoardLeftMargin)
}

// StatusLine formats the cursor and board metrics
func StatusLine(reg *status.Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "cursor %s", reg.Strings.Get(status.CursorIcon).Load())
	for _, m := range []struct {
		label string
		key   string
	}{
		{"depth", status.CursorDepth},
		{"push", status.CursorPushes},
		{"pop", status.CursorPops},
		{"drop", status.CursorTeardowns},
		{"sink", status.CursorSinkUpdates},
		{"moves", status.BoardMoves},
	} {
		fmt.Fprintf(&sb, " | %s %d", m.label, reg.Ints.Get(m.key).Load())
	}
	return sb.String()
}

func (b *Board) lastMove() *chess.Move {
	moves := b.game.Moves()
	if len(moves) == 0 {
		return nil
	}
	return moves[len(moves)-1]
}

func drawWidget(buf *core.Buffer, x, y int, piece chess.Piece, bg tcell.Color, e core.Entity, theme Theme) {
	style := tcell.StyleDefault.Background(bg)
	for dy := 0; dy < parameter.SquareHeight; dy++ {
		for dx := 0; dx < parameter.SquareWidth; dx++ {
			buf.SetContent(x+dx, y+dy, ' ', style, e)
		}
	}
	if piece == chess.NoPiece {
		return
	}
	fg := theme.White
	if piece.Color() == chess.Black {
		fg = theme.Black
	}
	glyph := []rune(piece.String())[0]
	buf.SetContent(x+parameter.SquareWidth/2-1, y+(parameter.SquareHeight-1)/2, glyph, style.Foreground(fg).Bold(true), e)
}

// drawText writes s from (x, y), cut to maxWidth cells
func drawText(buf *core.Buffer, x, y int, style tcell.Style, s string, maxWidth int) {
	if maxWidth <= 0 {
		return
	}
	s = runewidth.Truncate(s, maxWidth, "…")
	for _, r := range s {
		buf.SetContent(x, y, r, style, 0)
		x += runewidth.RuneWidth(r)
	}
}
