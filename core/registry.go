package core

// Handle is an opaque reference to a value held by a Registry
// Bit-pack: Generation (high 32 bits) | Slot index + 1 (low 32 bits)
// The +1 keeps every issued handle distinct from NilHandle
type Handle uint64

// NilHandle is never issued by a Registry
const NilHandle Handle = 0

func makeHandle(index, generation uint32) Handle {
	return Handle(uint64(generation)<<32 | uint64(index+1))
}

func (h Handle) slot() (index uint32, ok bool) {
	low := uint32(h)
	if low == 0 {
		return 0, false
	}
	return low - 1, true
}

func (h Handle) generation() uint32 {
	return uint32(h >> 32)
}

type registrySlot[T any] struct {
	value      T
	generation uint32
	live       bool
}

// Registry is a generational slot store with stable handles
// Freed slots are recycled under a bumped generation so stale handles stay dead
// Not safe for concurrent use; PriorityStack guards it
type Registry[T any] struct {
	slots []registrySlot[T]
	free  []uint32 // Recycled slot indices, LIFO
	live  int
}

// NewRegistry creates a registry with room for capacity values before growing
func NewRegistry[T any](capacity int) *Registry[T] {
	return &Registry[T]{
		slots: make([]registrySlot[T], 0, capacity),
		free:  make([]uint32, 0, capacity),
	}
}

// Insert stores value and returns a fresh handle, O(1) amortized
func (r *Registry[T]) Insert(value T) Handle {
	var index uint32
	if n := len(r.free); n > 0 {
		index = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		index = uint32(len(r.slots))
		r.slots = append(r.slots, registrySlot[T]{})
	}

	s := &r.slots[index]
	s.value = value
	s.live = true
	r.live++
	return makeHandle(index, s.generation)
}

// Remove invalidates h and returns the value it referenced
// A dead or foreign handle returns false and leaves the registry untouched
func (r *Registry[T]) Remove(h Handle) (T, bool) {
	s := r.lookup(h)
	if s == nil {
		var zero T
		return zero, false
	}

	value := s.value
	var zero T
	s.value = zero
	s.live = false
	s.generation++
	r.live--

	index, _ := h.slot()
	r.free = append(r.free, index)
	return value, true
}

// Get returns the value referenced by h
func (r *Registry[T]) Get(h Handle) (T, bool) {
	s := r.lookup(h)
	if s == nil {
		var zero T
		return zero, false
	}
	return s.value, true
}

// Contains reports whether h is live
func (r *Registry[T]) Contains(h Handle) bool {
	return r.lookup(h) != nil
}

// Len returns the number of live values
func (r *Registry[T]) Len() int {
	return r.live
}

func (r *Registry[T]) lookup(h Handle) *registrySlot[T] {
	index, ok := h.slot()
	if !ok || int(index) >= len(r.slots) {
		return nil
	}
	s := &r.slots[index]
	if !s.live || s.generation != h.generation() {
		return nil
	}
	return s
}
