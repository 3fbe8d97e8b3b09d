package core

import (
	"fmt"
	"slices"
	"sort"
)

type indexEntry struct {
	handle   Handle
	priority int
}

// PriorityIndex keeps handles sorted ascending by priority
// Equal priorities keep insertion order, so the last entry is the most recent of the highest tier
type PriorityIndex struct {
	entries []indexEntry
	members map[Handle]struct{}
}

// NewPriorityIndex creates an empty index
func NewPriorityIndex(capacity int) *PriorityIndex {
	return &PriorityIndex{
		entries: make([]indexEntry, 0, capacity),
		members: make(map[Handle]struct{}, capacity),
	}
}

// Insert places h after every entry whose priority is <= priority
// Panics on a duplicate handle: callers only insert freshly issued handles
func (x *PriorityIndex) Insert(h Handle, priority int) {
	if _, dup := x.members[h]; dup {
		panic(fmt.Sprintf("priority index: handle %#x already present", uint64(h)))
	}

	// Upper bound: first entry strictly above priority
	i := sort.Search(len(x.entries), func(i int) bool {
		return x.entries[i].priority > priority
	})
	x.entries = slices.Insert(x.entries, i, indexEntry{handle: h, priority: priority})
	x.members[h] = struct{}{}
}

// Remove drops h, preserving the order of the remaining entries
// Absent handles are a no-op
func (x *PriorityIndex) Remove(h Handle) bool {
	if _, ok := x.members[h]; !ok {
		return false
	}
	delete(x.members, h)

	// Scan from the top: pops usually target recent, high-priority entries
	for i := len(x.entries) - 1; i >= 0; i-- {
		if x.entries[i].handle == h {
			x.entries = slices.Delete(x.entries, i, i+1)
			break
		}
	}
	return true
}

// Last returns the highest-priority handle, ties to the most recent insertion
func (x *PriorityIndex) Last() (Handle, bool) {
	if len(x.entries) == 0 {
		return NilHandle, false
	}
	return x.entries[len(x.entries)-1].handle, true
}

// Contains reports whether h is indexed
func (x *PriorityIndex) Contains(h Handle) bool {
	_, ok := x.members[h]
	return ok
}

// Len returns the number of indexed handles
func (x *PriorityIndex) Len() int {
	return len(x.entries)
}

// Handles returns the indexed handles in ascending order
func (x *PriorityIndex) Handles() []Handle {
	out := make([]Handle, len(x.entries))
	for i, e := range x.entries {
		out[i] = e.handle
	}
	return out
}
