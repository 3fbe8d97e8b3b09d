package status

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryCachedPointers(t *testing.T) {
	r := NewRegistry()

	pushes := r.Ints.Get(CursorPushes)
	pushes.Add(2)
	assert.Same(t, pushes, r.Ints.Get(CursorPushes))
	assert.EqualValues(t, 2, r.Ints.Get(CursorPushes).Load())

	r.Strings.Get(CursorIcon).Store("grabbing")
	assert.Equal(t, "grabbing", r.Strings.Get(CursorIcon).Load())
	assert.Equal(t, 2, r.TotalCount())
}

func TestMetricMapRangeSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(CursorPops)
	r.Ints.Get(CursorDepth)
	r.Ints.Get(CursorPushes)

	var keys []string
	r.Ints.Range(func(key string, _ *atomic.Int64) {
		keys = append(keys, key)
	})
	assert.Equal(t, []string{CursorDepth, CursorPops, CursorPushes}, keys)
	assert.True(t, r.Ints.Has(CursorPops))
	assert.False(t, r.Ints.Has(CursorTeardowns))
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	assert.Equal(t, "", s.Load())
	s.Store("abcdefghijklmnopqrstuvwxyz")
	assert.Len(t, s.Load(), MaxStringWidth)

	// Wide runes count two cells and are never split
	s.Store("王王王王王王王王王王王王")
	assert.Equal(t, "王王王王王王王王王王", s.Load())
}
