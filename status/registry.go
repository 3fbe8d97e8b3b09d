package status

import "sync/atomic"

// Metric keys published by the cursor system
const (
	CursorPushes      = "cursor.pushes"
	CursorPops        = "cursor.pops"
	CursorTeardowns   = "cursor.teardowns"
	CursorSinkUpdates = "cursor.sink_updates"
	CursorDepth       = "cursor.depth"
	CursorIcon        = "cursor.icon"
)

// Metric keys published by the board host
const (
	BoardMoves   = "board.moves"
	BoardWidgets = "board.widgets"
)

// Registry is the central metrics facade
// Systems cache pointers during init; event handlers write directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Strings.Count()
}
