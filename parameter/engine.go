package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// Event & Resource Limits
const (
	// EventQueueSize is the initial capacity of the event queue
	// The queue grows past it under bursts and shrinks back on Consume
	EventQueueSize = 1024

	// CursorStackCapacity pre-sizes the cursor request stack
	// Tens of concurrently hovered/pressed widgets at most
	CursorStackCapacity = 32
)
