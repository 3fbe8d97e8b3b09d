package component

import (
	"github.com/notnil/chess"
)

// SquareComponent binds a widget to a board square
type SquareComponent struct {
	Square chess.Square
}

// PromotionChoiceComponent marks a promotion picker widget
// From/To describe the pending pawn move; Piece is the promotion this widget selects
type PromotionChoiceComponent struct {
	From  chess.Square
	To    chess.Square
	Piece chess.PieceType
}
