package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryInsertGet(t *testing.T) {
	r := NewRegistry[string](2)

	a := r.Insert("a")
	b := r.Insert("b")
	assert.NotEqual(t, NilHandle, a)
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, r.Len())

	v, ok := r.Get(a)
	require.True(t, ok)
	assert.Equal(t, "a", v)
}

func TestRegistryRemoveIsIdempotent(t *testing.T) {
	r := NewRegistry[string](0)
	h := r.Insert("x")

	v, ok := r.Remove(h)
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	v, ok = r.Remove(h)
	assert.False(t, ok, "second removal must be a no-op")
	assert.Empty(t, v)
	assert.Zero(t, r.Len())
}

func TestRegistryStaleHandleAfterReuse(t *testing.T) {
	r := NewRegistry[int](0)
	old := r.Insert(1)
	r.Remove(old)

	// Recycles the slot under a new generation
	fresh := r.Insert(2)
	assert.NotEqual(t, old, fresh)
	assert.False(t, r.Contains(old))

	_, ok := r.Get(old)
	assert.False(t, ok)
	_, ok = r.Remove(old)
	assert.False(t, ok, "stale handle must not remove the slot's new occupant")

	v, ok := r.Get(fresh)
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestRegistryForeignHandles(t *testing.T) {
	r := NewRegistry[int](0)
	r.Insert(1)

	_, ok := r.Get(NilHandle)
	assert.False(t, ok)
	_, ok = r.Get(makeHandle(99, 0))
	assert.False(t, ok)
}
