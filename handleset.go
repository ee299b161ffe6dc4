package pointstore

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// HandleSet implements a set of slot handles on top of a 32-bit Roaring
// Bitmap. It wraps the official roaring implementation.
// Used to snapshot and combine groups of live handles.
type HandleSet struct {
	rb *roaring.Bitmap
}

// NewHandleSet creates a new empty handle set.
func NewHandleSet() *HandleSet {
	return &HandleSet{
		rb: roaring.New(),
	}
}

// Add adds a handle to the set.
func (h *HandleSet) Add(handle Handle) {
	h.rb.Add(uint32(handle))
}

// CheckedAdd adds a handle to the set and returns true if it was absent.
func (h *HandleSet) CheckedAdd(handle Handle) bool {
	return h.rb.CheckedAdd(uint32(handle))
}

// Remove removes a handle from the set.
func (h *HandleSet) Remove(handle Handle) {
	h.rb.Remove(uint32(handle))
}

// Contains checks if a handle is in the set.
func (h *HandleSet) Contains(handle Handle) bool {
	return h.rb.Contains(uint32(handle))
}

// IsEmpty returns true if the set is empty.
func (h *HandleSet) IsEmpty() bool {
	return h.rb.IsEmpty()
}

// Cardinality returns the number of handles in the set.
func (h *HandleSet) Cardinality() uint64 {
	return h.rb.GetCardinality()
}

// Clone returns a deep copy of the set.
func (h *HandleSet) Clone() *HandleSet {
	return &HandleSet{
		rb: h.rb.Clone(),
	}
}

// Iterator returns an iterator over the set in ascending handle order.
func (h *HandleSet) Iterator() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		it := h.rb.Iterator()
		for it.HasNext() {
			if !yield(Handle(it.Next())) {
				return
			}
		}
	}
}

// And computes the intersection with another set.
func (h *HandleSet) And(other *HandleSet) {
	h.rb.And(other.rb)
}

// AndNot computes the difference with another set.
func (h *HandleSet) AndNot(other *HandleSet) {
	h.rb.AndNot(other.rb)
}

// Or computes the union with another set.
func (h *HandleSet) Or(other *HandleSet) {
	h.rb.Or(other.rb)
}

// LiveHandles returns the set of handles whose reference count is positive.
// The snapshot is built in O(capacity) and is independent of the store:
// later adds and releases do not change it.
func (s *Store[T]) LiveHandles() *HandleSet {
	live := NewHandleSet()
	for h, rc := range s.refCount {
		if rc > 0 {
			live.Add(Handle(h))
		}
	}

	return live
}
