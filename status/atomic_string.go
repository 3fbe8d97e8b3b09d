package status

import (
	"sync/atomic"

	"github.com/mattn/go-runewidth"
)

// MaxStringWidth bounds a published string in terminal cells
const MaxStringWidth = 20

// AtomicString is a lock-free string cell for the status line
// The zero value holds ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store publishes val, cut to MaxStringWidth cells on a rune boundary
func (s *AtomicString) Store(val string) {
	val = runewidth.Truncate(val, MaxStringWidth, "")
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
