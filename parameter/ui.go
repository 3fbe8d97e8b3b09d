package parameter

// Board layout in terminal cells
const (
	BoardLeftMargin = 4
	BoardTopMargin  = 3

	// SquareWidth doubles the cell so squares look square in most fonts
	SquareWidth  = 4
	SquareHeight = 2

	// StatusLineOffset is the gap between the board's file labels and the status line
	StatusLineOffset = 2
)

// Promotion picker placement relative to the board's right edge
const (
	PromotionGap = 4
)
