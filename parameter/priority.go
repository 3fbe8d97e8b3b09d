package parameter

// Cursor request priorities; hover sits below click by convention
const (
	// CursorPriorityBaseline is held by the default icon for the whole process lifetime
	CursorPriorityBaseline = 0

	CursorPriorityHover = 0
	CursorPriorityClick = 1
)
