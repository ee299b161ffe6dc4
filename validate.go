package pointstore

import "fmt"

// Validate checks the store's internal invariants and returns a descriptive
// error for the first violation found. The free-list must hold every free
// handle exactly once, free and live slots must partition the handle space,
// no reference count may be negative, and the free pointer must stay in
// [-1, capacity).
//
// Validate is read-only and O(capacity). It exists for tests and debug
// paths; a healthy store can never fail it through the public API.
func (s *Store[T]) Validate() error {
	if s.freePtr < -1 || s.freePtr >= s.capacity {
		return fmt.Errorf("free pointer %d out of range [-1, %d)", s.freePtr, s.capacity)
	}

	free := NewHandleSet()
	for i := 0; i <= s.freePtr; i++ {
		h := s.freeStack[i]
		if int64(h) >= int64(s.capacity) {
			return fmt.Errorf("free-list entry %d holds handle %d out of range [0, %d)", i, h, s.capacity)
		}
		if !free.CheckedAdd(h) {
			return fmt.Errorf("handle %d appears twice in the free-list", h)
		}
		if rc := s.refCount[h]; rc != 0 {
			return fmt.Errorf("free handle %d has reference count %d", h, rc)
		}
	}

	live := 0
	for h, rc := range s.refCount {
		if rc < 0 {
			return fmt.Errorf("handle %d has negative reference count %d", h, rc)
		}
		if rc > 0 {
			live++
		} else if !free.Contains(Handle(h)) {
			return fmt.Errorf("free handle %d is missing from the free-list", h)
		}
	}

	if live != s.Size() {
		return fmt.Errorf("%d slots in use but size is %d", live, s.Size())
	}

	return nil
}
