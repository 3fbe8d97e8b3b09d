package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit    // q, Ctrl+C, Ctrl+Q
	IntentResize  // Terminal resize event
	IntentNewGame // n
	IntentFlip    // f, swap board orientation

	// Pointer activity; events already queued by the picker
	IntentPointer
)

// Intent is a parsed action for the game loop
type Intent struct {
	Type IntentType
}
